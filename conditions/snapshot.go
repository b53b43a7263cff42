// Package conditions supplies the weather snapshots the clock renders
// from: a 24-hour series per metric plus current scalars. Snapshots are
// immutable once built and are swapped into the engine wholesale, so the
// renderer never observes a half-updated series.
package conditions

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/spectrum"
)

// Hours is the forecast horizon: index 0 is "now", index 23 is 24h out
const Hours = 24

// Snapshot is one self-consistent weather reading. Treat as read-only
// after construction.
type Snapshot struct {
	CurrentTemp float64 // °F
	CurrentWind float64 // mph sustained
	CurrentGust float64 // mph

	HourlyTemps [Hours]float64
	HourlyWinds [Hours]float64
	HourlyRain  [Hours]float64

	TempRange spectrum.Range
	WindRange spectrum.Range
	RainRange spectrum.Range

	Taken time.Time
}

// New validates raw series and builds a snapshot with the default value
// ranges. It fails fast on malformed input so NaNs never reach the color
// math: wrong length or any non-finite sample rejects the whole
// snapshot.
func New(temps, winds, rain []float64, curTemp, curWind, curGust float64, taken time.Time) (*Snapshot, error) {
	if err := checkSeries("temps", temps); err != nil {
		return nil, err
	}
	if err := checkSeries("winds", winds); err != nil {
		return nil, err
	}
	if err := checkSeries("rain", rain); err != nil {
		return nil, err
	}
	for name, v := range map[string]float64{"current temp": curTemp, "current wind": curWind, "current gust": curGust} {
		if !isFinite(v) {
			return nil, fmt.Errorf("conditions: %s is not finite: %v", name, v)
		}
	}

	s := &Snapshot{
		CurrentTemp: curTemp,
		CurrentWind: curWind,
		CurrentGust: curGust,
		TempRange:   spectrum.Range{Min: parameter.TempRangeMin, Max: parameter.TempRangeMax},
		WindRange:   spectrum.Range{Min: parameter.WindRangeMin, Max: parameter.WindRangeMax},
		RainRange:   spectrum.Range{Min: parameter.RainRangeMin, Max: parameter.RainRangeMax},
		Taken:       taken,
	}
	copy(s.HourlyTemps[:], temps)
	copy(s.HourlyWinds[:], winds)
	copy(s.HourlyRain[:], rain)
	return s, nil
}

// Validate re-checks the snapshot invariants. Snapshots built through
// New are always valid; this guards ones assembled by hand before they
// are swapped into the render path.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("conditions: nil snapshot")
	}
	if err := checkSeries("temps", s.HourlyTemps[:]); err != nil {
		return err
	}
	if err := checkSeries("winds", s.HourlyWinds[:]); err != nil {
		return err
	}
	if err := checkSeries("rain", s.HourlyRain[:]); err != nil {
		return err
	}
	if !isFinite(s.CurrentTemp) || !isFinite(s.CurrentWind) || !isFinite(s.CurrentGust) {
		return fmt.Errorf("conditions: non-finite current scalar")
	}
	return nil
}

// Series returns the hourly samples and value range for a spectrum tag
func (s *Snapshot) Series(tag spectrum.Tag) ([Hours]float64, spectrum.Range) {
	switch tag {
	case spectrum.Wind:
		return s.HourlyWinds, s.WindRange
	case spectrum.Precipitation:
		return s.HourlyRain, s.RainRange
	default:
		return s.HourlyTemps, s.TempRange
	}
}

func checkSeries(name string, samples []float64) error {
	if len(samples) != Hours {
		return fmt.Errorf("conditions: %s series has %d samples, want %d", name, len(samples), Hours)
	}
	for i, v := range samples {
		if !isFinite(v) {
			return fmt.Errorf("conditions: %s[%d] is not finite: %v", name, i, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
