// Package wiggle generates wind-driven turbulence for a hand's cells.
// Wind speed is bucketed into four tiers with qualitatively different
// motion: calm hands are perfectly straight, light wind makes a
// traveling wave, moderate wind overlays two frequencies, and strong
// gusty wind squirms chaotically with a small random jitter on top.
package wiggle

import (
	"math"

	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/vmath"
)

// Field holds per-cell phase offsets for one hand. Phases are assigned
// once from the seed at construction and never regenerated, so no two
// cells ever move in lock-step and a given seed replays the exact same
// trajectory. Not safe for concurrent use: the jitter draws from the
// same generator.
type Field struct {
	phases []float64
	rng    *vmath.FastRand
}

// NewField creates a turbulence field for a hand with the given cell
// count. The seed makes phase assignment and jitter reproducible.
func NewField(cells int, seed uint64) *Field {
	rng := vmath.NewFastRand(seed)
	phases := make([]float64, cells)
	for i := range phases {
		phases[i] = rng.Angle()
	}
	return &Field{phases: phases, rng: rng}
}

// Cells returns the number of cells the field was built for
func (f *Field) Cells() int {
	return len(f.phases)
}

// Phase returns the fixed phase offset of a cell
func (f *Field) Phase(cell int) float64 {
	return f.phases[cell]
}

// Displacement returns the (dx, dy) offset for one cell at the given
// animation time under the current wind. progress is the cell's
// normalized position along the hand, which makes waves travel outward
// instead of swaying the whole hand rigidly.
func (f *Field) Displacement(cell int, progress, animTime, wind, gust float64) (dx, dy float64) {
	if cell < 0 || cell >= len(f.phases) {
		return 0, 0
	}
	if math.IsNaN(wind) || wind <= parameter.WindCalmMax {
		// A perfectly straight hand is the unambiguous "no wind" signal
		return 0, 0
	}

	phase := f.phases[cell]

	switch {
	case wind <= parameter.WindLightMax:
		return lightWave(progress, animTime, phase)
	case wind <= parameter.WindModerateMax:
		return moderateWave(progress, animTime, phase, wind)
	default:
		return f.strongWave(cell, progress, animTime, phase, wind, gust)
	}
}

func lightWave(progress, t, phase float64) (float64, float64) {
	amp := parameter.LightAmplitude
	freq := parameter.LightWaveFreq
	dx := amp * math.Sin(t*freq+phase+progress*math.Pi)
	dy := amp * parameter.LightYScale * math.Cos(t*freq*parameter.LightYFreqMult+phase)
	return dx, dy
}

func moderateWave(progress, t, phase, wind float64) (float64, float64) {
	amp := parameter.ModerateBaseAmplitude +
		(wind-parameter.WindLightMax)*parameter.ModerateAmplitudeSlope
	pf := parameter.ModeratePrimaryFreq
	sf := parameter.ModerateSecondaryFreq

	dx := amp * (math.Sin(t*pf+phase+progress*math.Pi*1.5) +
		parameter.ModerateSecondaryWt*math.Sin(t*sf+phase*1.7))
	dy := amp * parameter.ModerateYScale * (math.Cos(t*pf*1.2+phase) +
		parameter.ModerateYSecondaryWt*math.Sin(t*sf*1.4+phase*2.1))
	return dx, dy
}

func (f *Field) strongWave(cell int, progress, t, phase, wind, gust float64) (float64, float64) {
	chaos := math.Min(1.0, wind/parameter.WindChaosSaturation)
	gustFactor := 1.0
	if wind > 0 && gust > wind {
		gustFactor = gust / wind
	}

	baseAmp := parameter.StrongBaseAmplitude + chaos*parameter.StrongChaosAmplitude
	gustAmp := baseAmp * (gustFactor - 1.0) * parameter.StrongGustWeight

	primaryX := baseAmp * math.Sin(t*parameter.StrongPrimaryFreqX+phase+progress*math.Pi*2)
	primaryY := baseAmp * parameter.StrongPrimaryYScale * math.Cos(t*parameter.StrongPrimaryFreqY+phase*1.3)

	secondaryX := baseAmp * parameter.StrongSecondaryWtX * math.Sin(t*parameter.StrongSecondaryFreqX+phase*2.7+float64(cell)*0.5)
	secondaryY := baseAmp * parameter.StrongSecondaryWtY * math.Cos(t*parameter.StrongSecondaryFreqY+phase*1.9)

	gustX := gustAmp * math.Sin(t*parameter.StrongGustFreqX+phase*3.1)
	gustY := gustAmp * parameter.StrongGustYScale * math.Cos(t*parameter.StrongGustFreqY+phase*2.8)

	// The only per-tick randomness: kept small so motion reads as wind,
	// not glitching
	jitterX := chaos * parameter.StrongJitterScale * (f.rng.Float64() - 0.5)
	jitterY := chaos * parameter.StrongJitterScale * (f.rng.Float64() - 0.5)

	return primaryX + secondaryX + gustX + jitterX,
		primaryY + secondaryY + gustY + jitterY
}

// Sample binds a Field to one tick's animation time and wind reading,
// satisfying geometry.Displacer
type Sample struct {
	Field    *Field
	AnimTime float64
	Wind     float64
	Gust     float64
}

func (s Sample) Displace(cell int, progress float64) (dx, dy float64) {
	return s.Field.Displacement(cell, progress, s.AnimTime, s.Wind, s.Gust)
}
