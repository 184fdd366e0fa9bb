package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	points := []Point{{X: 0, Y: 10}, {X: 1, Y: 20}, {X: 2, Y: 30}}

	out := Normalize(points, 100, 50, 10)
	require.Len(t, out, 3)

	// X spreads evenly across the padded box.
	assert.Equal(t, 10.0, out[0].X)
	assert.Equal(t, 50.0, out[1].X)
	assert.Equal(t, 90.0, out[2].X)

	// Lowest value lands on the baseline, highest at the top.
	assert.Equal(t, 40.0, out[0].Y)
	assert.Equal(t, 25.0, out[1].Y)
	assert.Equal(t, 10.0, out[2].Y)
}

func TestNormalizeFlatSeries(t *testing.T) {
	points := []Point{{Y: 5}, {Y: 5}, {Y: 5}}

	out := Normalize(points, 100, 50, 10)
	require.Len(t, out, 3)
	for _, p := range out {
		// Flat series stays on the baseline instead of dividing by zero.
		assert.Equal(t, 40.0, p.Y)
	}
}

func TestNormalizeSinglePoint(t *testing.T) {
	out := Normalize([]Point{{Y: 42}}, 100, 50, 10)
	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].X)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Nil(t, Normalize(nil, 100, 50, 10))
}

func TestLinePath(t *testing.T) {
	path := LinePath([]Point{{X: 10, Y: 40}, {X: 50, Y: 25}, {X: 90, Y: 10}})
	assert.Equal(t, "M 10 40 L 50 25 L 90 10", path)

	assert.Equal(t, "", LinePath(nil))
}

func TestAreaPath(t *testing.T) {
	path := AreaPath([]Point{{X: 10, Y: 40}, {X: 90, Y: 10}}, 50, 10)
	assert.Equal(t, "M 10 40 L 90 10 L 90 40 L 10 40 Z", path)

	assert.Equal(t, "", AreaPath(nil, 50, 10))
}

func TestChangePercent(t *testing.T) {
	assert.Equal(t, 0.0, ChangePercent(nil))
	assert.Equal(t, 0.0, ChangePercent([]Point{{Y: 100}}))
	assert.Equal(t, 0.0, ChangePercent([]Point{{Y: 0}, {Y: 50}}))

	assert.InDelta(t, 25.0, ChangePercent([]Point{{Y: 100}, {Y: 125}}), 1e-9)
	assert.InDelta(t, -20.0, ChangePercent([]Point{{Y: 100}, {Y: 80}}), 1e-9)

	// Only the last two points matter.
	assert.InDelta(t, 10.0, ChangePercent([]Point{{Y: 5}, {Y: 100}, {Y: 110}}), 1e-9)
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))

	line := Sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, "▁▂▃▄▅▆▇█", line)

	// Flat series renders mid-height blocks.
	flat := Sparkline([]float64{3, 3, 3})
	assert.Equal(t, 3, len([]rune(flat)))
	assert.Equal(t, strings.Repeat(string([]rune(flat)[0]), 3), flat)
}

func TestSVG(t *testing.T) {
	points := []Point{{X: 0, Y: 100}, {X: 1, Y: 150}, {X: 2, Y: 120}}

	doc := SVG(points, 800, 300, "#16A34A")
	assert.True(t, strings.HasPrefix(doc, "<svg"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
	assert.Contains(t, doc, `stroke="#16A34A"`)
	assert.Contains(t, doc, "<circle")
	assert.Contains(t, doc, "fill-opacity")
}
