package charts

import (
	"fmt"
	"strings"
)

// SVG renders a standalone line chart document, matching the portfolio
// graph style: translucent area fill, rounded line, dots on each point.
func SVG(points []Point, width, height int, color string) string {
	const padding = 16.0
	normalized := Normalize(points, float64(width), float64(height), padding)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	b.WriteString("\n")

	if len(normalized) > 0 {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" fill-opacity="0.15"/>`,
			AreaPath(normalized, float64(height), padding), color)
		b.WriteString("\n")
		fmt.Fprintf(&b, `  <path d="%s" stroke="%s" stroke-width="2.5" fill="none" stroke-linecap="round" stroke-linejoin="round"/>`,
			LinePath(normalized), color)
		b.WriteString("\n")
		for _, p := range normalized {
			fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="5" fill="%s" stroke="#0F0E0E" stroke-width="2"/>`,
				p.X, p.Y, color)
			b.WriteString("\n")
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}
