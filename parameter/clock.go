package parameter

import "time"

// Tick cadence. Wiggling hands need the base cadence to read as fluid
// motion; hands that only track the clock are updated once per second.
const (
	BaseTickInterval = 100 * time.Millisecond
	SlowTickInterval = time.Second
)

// Default hand layout: cell counts and lengths in sink units
const (
	HourCells    = 20
	MinuteCells  = 25
	SecondCells  = 30
	HourLength   = 100.0
	MinuteLength = 130.0
	SecondLength = 160.0
)

// CurveFactor is the bow of a curved-mode hand relative to its length
const CurveFactor = 0.3

// Center ornament: 3x3 grid of pulsing rainbow cells
const (
	CenterCells     = 9
	CenterGridSide  = 3
	CenterSpacing   = 10.0
	CenterHueStep   = 40.0 // hue offset between adjacent center cells
	CenterHueRate   = 12.0 // hue degrees per second of wall-clock time
	CenterPulseBase = 0.6
	CenterPulseAmp  = 0.4
	CenterPulseFreq = 0.6
	CenterPulsePhi  = 0.9 // per-cell pulse phase step
)

// ConditionsRefreshInterval is how often a live feed is re-fetched
const ConditionsRefreshInterval = 10 * time.Minute
