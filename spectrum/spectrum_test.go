package spectrum

import (
	"math"
	"testing"
)

var testRange = Range{Min: 0, Max: 100}

func allTags() []Tag {
	return []Tag{Temperature, Wind, Precipitation}
}

func TestMapClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		same  float64 // value whose color must match
	}{
		{"far above max", testRange.Max + 1000, testRange.Max},
		{"just above max", testRange.Max + 0.5, testRange.Max},
		{"far below min", testRange.Min - 1000, testRange.Min},
		{"NaN pins to min", math.NaN(), testRange.Min},
		{"+Inf pins to max", math.Inf(1), testRange.Max},
	}

	for _, tag := range allTags() {
		for _, tt := range tests {
			t.Run(tag.String()+"/"+tt.name, func(t *testing.T) {
				got := Map(tt.value, testRange, tag)
				want := Map(tt.same, testRange, tag)
				if got != want {
					t.Errorf("Map(%v) = %v, want color of %v = %v", tt.value, got, tt.same, want)
				}
			})
		}
	}
}

// Band boundaries must not produce a visible color step: sampling just
// below and just above every knot position must differ by at most a few
// RGB counts.
func TestMapContinuousAtBandEdges(t *testing.T) {
	const eps = 1e-4
	const maxStep = 3 // RGB counts

	for _, tag := range allTags() {
		knots := tag.knots()
		for _, k := range knots[1 : len(knots)-1] {
			value := testRange.Min + k.pos*(testRange.Max-testRange.Min)
			below := Map(value-eps, testRange, tag)
			above := Map(value+eps, testRange, tag)

			if chanDiff(below.R, above.R) > maxStep ||
				chanDiff(below.G, above.G) > maxStep ||
				chanDiff(below.B, above.B) > maxStep {
				t.Errorf("%s: color steps at band edge %.2f: %v vs %v", tag, k.pos, below, above)
			}
		}
	}
}

func TestMapDeterministic(t *testing.T) {
	for _, tag := range allTags() {
		for v := 0.0; v <= 100; v += 7 {
			if Map(v, testRange, tag) != Map(v, testRange, tag) {
				t.Fatalf("%s: Map(%v) not deterministic", tag, v)
			}
		}
	}
}

func TestMapDegenerateRange(t *testing.T) {
	// Zero-width range must not divide by zero; everything maps to the
	// cold end
	rng := Range{Min: 50, Max: 50}
	got := Map(75, rng, Temperature)
	want := Map(0, testRange, Temperature)
	if got != want {
		t.Errorf("degenerate range: got %v, want %v", got, want)
	}
}

func TestHSVHueWraps(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
	}{
		{"negative wraps", -20, 340},
		{"over 360 wraps", 380, 20},
		{"exact 360 is 0", 360, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if HSV(tt.h1, 0.8, 0.9) != HSV(tt.h2, 0.8, 0.9) {
				t.Errorf("HSV(%v) != HSV(%v)", tt.h1, tt.h2)
			}
		})
	}
}

func TestKnotTablesWellFormed(t *testing.T) {
	for _, tag := range allTags() {
		knots := tag.knots()
		if len(knots) < 2 {
			t.Fatalf("%s: need at least 2 knots", tag)
		}
		if knots[0].pos != 0 || knots[len(knots)-1].pos != 1 {
			t.Errorf("%s: knots must span [0,1]", tag)
		}
		for i := 1; i < len(knots); i++ {
			if knots[i].pos <= knots[i-1].pos {
				t.Errorf("%s: knot positions not ascending at %d", tag, i)
			}
		}
	}
}

func chanDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
