package render

import (
	"math"
	"testing"
	"time"
)

func at(h, m, s, ns int) time.Time {
	return time.Date(2025, 6, 15, h, m, s, ns, time.UTC)
}

func TestHandSpecAngle(t *testing.T) {
	tests := []struct {
		name string
		role Role
		t    time.Time
		want float64
	}{
		{"hour at 3:00", Hour, at(3, 0, 0, 0), math.Pi / 2},
		{"hour at 15:00 wraps", Hour, at(15, 0, 0, 0), math.Pi / 2},
		{"hour at 6:30 is fractional", Hour, at(6, 30, 0, 0), 6.5 * math.Pi / 6},
		{"minute at :30", Minute, at(9, 30, 0, 0), math.Pi},
		{"minute at :15:30 is fractional", Minute, at(9, 15, 30, 0), 15.5 * math.Pi / 30},
		{"second at :45", Second, at(0, 0, 45, 0), 45 * math.Pi / 30},
		{"second at :15.5 is fractional", Second, at(0, 0, 15, 5e8), 15.5 * math.Pi / 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := HandSpec{Role: tt.role}
			got := spec.Angle(tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle() = %.9f, want %.9f", got, tt.want)
			}
		})
	}
}

func TestHandSpecAngleMonotonicWithinMinute(t *testing.T) {
	// Sub-second ticks must produce strictly increasing second angles,
	// no stepping
	spec := HandSpec{Role: Second}
	prev := -1.0
	for ms := 0; ms < 1000; ms += 100 {
		a := spec.Angle(at(0, 0, 10, ms*1e6))
		if a <= prev {
			t.Fatalf("angle %.9f at %dms not increasing (prev %.9f)", a, ms, prev)
		}
		prev = a
	}
}
