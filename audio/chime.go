// Package audio plays optional chime tones through the speaker. The
// rendering core never touches audio; the command wires a Chime to
// wall-clock boundaries itself.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime generates short sine tones: a soft blip on the minute, a longer
// tone per hour stroke
type Chime struct {
	initialized bool
}

// Init opens the speaker. Failure leaves the chime silent but usable.
func (c *Chime) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	c.initialized = true
	return nil
}

// Close releases the speaker
func (c *Chime) Close() {
	if c.initialized {
		speaker.Close()
		c.initialized = false
	}
}

// Minute plays a short high blip
func (c *Chime) Minute() {
	c.tone(880, 60*time.Millisecond)
}

// Hour plays one longer, lower stroke
func (c *Chime) Hour() {
	c.tone(440, 400*time.Millisecond)
}

func (c *Chime) tone(freq float64, d time.Duration) {
	if !c.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
