// Package charts holds the derived-value math behind the portfolio
// graph: point normalization, SVG path strings and a terminal sparkline.
package charts

import (
	"fmt"
	"strings"
)

type Point struct {
	X float64
	Y float64
}

// Normalize maps points into a width x height box with the given
// padding. X positions are spread evenly; Y is linearly interpolated
// between the series min and max (inverted, since screen y grows down).
func Normalize(points []Point, width, height, padding float64) []Point {
	if len(points) == 0 {
		return nil
	}

	graphWidth := width - padding*2
	graphHeight := height - padding*2
	if graphWidth < 0 {
		graphWidth = 0
	}
	if graphHeight < 0 {
		graphHeight = 0
	}

	minValue, maxValue := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minValue {
			minValue = p.Y
		}
		if p.Y > maxValue {
			maxValue = p.Y
		}
	}
	valueRange := maxValue - minValue
	if valueRange == 0 {
		valueRange = 1
	}

	denom := float64(len(points) - 1)
	if denom == 0 {
		denom = 1
	}

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: padding + float64(i)/denom*graphWidth,
			Y: height - padding - (p.Y-minValue)/valueRange*graphHeight,
		}
	}
	return out
}

// LinePath renders normalized points as an SVG path: "M x y L x y ...".
func LinePath(normalized []Point) string {
	var b strings.Builder
	for i, p := range normalized {
		if i == 0 {
			fmt.Fprintf(&b, "M %g %g", p.X, p.Y)
			continue
		}
		fmt.Fprintf(&b, " L %g %g", p.X, p.Y)
	}
	return b.String()
}

// AreaPath closes the line path down to the baseline so it can be
// rendered as a filled area under the graph.
func AreaPath(normalized []Point, height, padding float64) string {
	if len(normalized) == 0 {
		return ""
	}
	base := height - padding
	first := normalized[0]
	last := normalized[len(normalized)-1]
	return fmt.Sprintf("%s L %g %g L %g %g Z", LinePath(normalized), last.X, base, first.X, base)
}

// ChangePercent returns the percentage change between the last two
// points, 0 when there is no previous value to compare against.
func ChangePercent(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	previous := points[len(points)-2].Y
	latest := points[len(points)-1].Y
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the series as a row of block characters.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minValue, maxValue := values[0], values[0]
	for _, v := range values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	valueRange := maxValue - minValue
	if valueRange == 0 {
		return strings.Repeat(string(sparks[len(sparks)/2]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - minValue) / valueRange * float64(len(sparks)-1))
		b.WriteRune(sparks[idx])
	}
	return b.String()
}
