package engine

import "time"

// AnimationClock provides monotonic animation time in seconds, decoupled
// from the wall clock so turbulence never jumps when the system clock
// adjusts
type AnimationClock struct {
	start time.Time
}

func NewAnimationClock() *AnimationClock {
	return &AnimationClock{start: time.Now()}
}

// Seconds returns elapsed animation time
func (c *AnimationClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}
