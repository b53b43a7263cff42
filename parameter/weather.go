package parameter

// Nominal value ranges per metric. Values outside these bounds are
// clamped at the color boundary, never rejected.
const (
	TempRangeMin = 55.0 // °F
	TempRangeMax = 115.0
	WindRangeMin = 0.0 // mph
	WindRangeMax = 45.0
	RainRangeMin = 0.0 // %
	RainRangeMax = 100.0
)
