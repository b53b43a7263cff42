package render

import (
	"math"
	"time"

	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/spectrum"
)

// Role identifies which time unit a hand tracks
type Role uint8

const (
	Hour Role = iota
	Minute
	Second
)

func (r Role) String() string {
	switch r {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return "unknown"
}

// HandSpec is the static configuration of one hand, immutable after
// engine construction
type HandSpec struct {
	Role    Role
	Cells   int
	Length  float64
	Tag     spectrum.Tag
	Mode    geometry.Mode
	Curve   float64       // bow factor for curved mode
	Cadence time.Duration // how often this hand re-renders
	Seed    uint64        // phase seed for wiggle mode
}

// Angle returns the hand angle in radians, clockwise from 12 o'clock.
// All roles use fractional sub-units so motion is smooth at any tick
// rate rather than stepping once per unit.
func (s HandSpec) Angle(t time.Time) float64 {
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	min := float64(t.Minute()) + sec/60
	hr := float64(t.Hour()%12) + min/60

	switch s.Role {
	case Hour:
		return hr * math.Pi / 6
	case Minute:
		return min * math.Pi / 30
	default:
		return sec * math.Pi / 30
	}
}
