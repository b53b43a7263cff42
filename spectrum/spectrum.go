// Package spectrum maps raw weather scalars onto per-metric color
// spectra. Each spectrum is a list of hue/saturation/value knots over the
// normalized [0,1] domain with linear interpolation between knots, so the
// gradient is continuous everywhere including band edges.
package spectrum

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/windclock/vmath"
)

// RGB is an 8-bit color triple, the only color type the sink sees
type RGB struct {
	R, G, B uint8
}

// Tag selects which value-to-color table to use
type Tag uint8

const (
	Temperature Tag = iota
	Wind
	Precipitation
)

func (t Tag) String() string {
	switch t {
	case Temperature:
		return "temperature"
	case Wind:
		return "wind"
	case Precipitation:
		return "precipitation"
	}
	return "unknown"
}

// Range is the normalization domain for a metric
type Range struct {
	Min, Max float64
}

// knot anchors hue/sat/val at a normalized position. Positions must be
// ascending with the first at 0 and the last at 1.
type knot struct {
	pos, hue, sat, val float64
}

// Temperature runs cold purple through blue and teal down to hot red,
// hue strictly descending so perceptual warmth is monotonic.
var temperatureKnots = []knot{
	{0.00, 270, 0.80, 0.60},
	{0.25, 210, 0.90, 0.80},
	{0.50, 120, 0.80, 0.90},
	{0.75, 50, 0.90, 0.95},
	{1.00, 0, 1.00, 0.95},
}

// Wind sweeps calm green toward violent magenta. The end hue is negative
// and wraps modulo 360 at conversion time.
var windKnots = []knot{
	{0.00, 120, 0.50, 0.70},
	{0.50, 50, 0.75, 0.85},
	{1.00, -20, 1.00, 1.00},
}

// Precipitation deepens clear light blue into saturated storm violet
var precipitationKnots = []knot{
	{0.00, 220, 0.30, 0.90},
	{0.50, 245, 0.65, 0.70},
	{1.00, 270, 1.00, 0.50},
}

func (t Tag) knots() []knot {
	switch t {
	case Wind:
		return windKnots
	case Precipitation:
		return precipitationKnots
	default:
		return temperatureKnots
	}
}

// Map converts a raw scalar to a color. Out-of-range and non-finite
// values clamp to the nearest boundary; the function is total.
func Map(value float64, rng Range, tag Tag) RGB {
	t := normalize(value, rng)
	knots := tag.knots()

	// Find the segment containing t and interpolate within it
	for i := 1; i < len(knots); i++ {
		if t <= knots[i].pos || i == len(knots)-1 {
			a, b := knots[i-1], knots[i]
			span := b.pos - a.pos
			f := 0.0
			if span > 0 {
				f = (t - a.pos) / span
			}
			return HSV(
				vmath.Lerp(a.hue, b.hue, f),
				vmath.Lerp(a.sat, b.sat, f),
				vmath.Lerp(a.val, b.val, f))
		}
	}
	return HSV(knots[0].hue, knots[0].sat, knots[0].val)
}

// HSV converts hue (degrees, any finite value), saturation and value to
// RGB using the standard 6-sector formula
func HSV(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, vmath.Clamp01(s), vmath.Clamp01(v))
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

func normalize(value float64, rng Range) float64 {
	if math.IsNaN(value) {
		return 0
	}
	span := rng.Max - rng.Min
	if span <= 0 {
		return 0
	}
	return vmath.Clamp01((value - rng.Min) / span)
}
