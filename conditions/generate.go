package conditions

import (
	"time"

	"github.com/lixenwraith/windclock/vmath"
)

// Generate builds a synthetic but plausible 24-hour forecast: a daily
// temperature cycle peaking in the afternoon, gusty afternoon winds with
// stronger evening storms, and afternoon rain. Deterministic for a given
// seed and start hour.
func Generate(seed uint64, now time.Time) *Snapshot {
	rng := vmath.NewFastRand(seed)

	temps := make([]float64, Hours)
	winds := make([]float64, Hours)
	rain := make([]float64, Hours)

	for i := 0; i < Hours; i++ {
		hour := (now.Hour() + i) % 24

		var tempBase float64
		if hour >= 6 && hour <= 18 {
			tempBase = 75 + float64(hour-12)*2
		} else {
			tempBase = 65 + float64(rng.Intn(11)-5)
		}
		temps[i] = clampRange(tempBase+float64(rng.Intn(24)-8), 55, 115)

		var baseWind, gustFactor float64
		switch {
		case hour >= 10 && hour <= 16: // afternoon winds
			baseWind = float64(8 + rng.Intn(18))
			gustFactor = float64(5 + rng.Intn(16))
		case hour >= 18 && hour <= 22: // evening storms
			baseWind = float64(15 + rng.Intn(21))
			gustFactor = float64(10 + rng.Intn(16))
		default: // calm periods
			baseWind = float64(2 + rng.Intn(11))
			gustFactor = float64(rng.Intn(9))
		}
		winds[i] = clampRange(baseWind+gustFactor, 0, 45)

		if hour >= 13 && hour <= 18 { // afternoon storms
			rain[i] = float64(30 + rng.Intn(66))
		} else {
			rain[i] = float64(rng.Intn(46))
		}
	}

	curWind := winds[0]
	snap, err := New(temps, winds, rain,
		temps[0], curWind, curWind+float64(3+rng.Intn(10)), now)
	if err != nil {
		// Generated values are finite and sized by construction
		panic(err)
	}
	return snap
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
