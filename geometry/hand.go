// Package geometry computes cell positions for clock hands. Angles are
// measured clockwise from 12 o'clock, so x = cx + d·sin(θ) and
// y = cy − d·cos(θ).
package geometry

import "math"

// Point is a position in sink units
type Point struct {
	X, Y float64
}

// Mode selects how a hand's cells are laid out along its ray
type Mode uint8

const (
	// Straight places cells on the angle ray
	Straight Mode = iota
	// Curved adds a fixed perpendicular bow peaking at the midpoint
	Curved
	// Wiggle delegates the perpendicular offset to a Displacer
	Wiggle
)

func (m Mode) String() string {
	switch m {
	case Straight:
		return "straight"
	case Curved:
		return "curved"
	case Wiggle:
		return "wiggle"
	}
	return "unknown"
}

// Displacer supplies a per-cell offset for wiggle-mode hands. The
// offset is in absolute sink units, already oriented.
type Displacer interface {
	Displace(cell int, progress float64) (dx, dy float64)
}

// Positions returns one point per cell. Cell i sits at distance
// (i+1)/cells · length from center, so the tip of the last cell reaches
// the full hand length. cells=0 yields an empty slice; length=0
// collapses every point onto center (plus any wiggle offset).
func Positions(center Point, angle, length float64, cells int, mode Mode, curve float64, disp Displacer) []Point {
	if cells <= 0 {
		return nil
	}

	pts := make([]Point, cells)
	sin, cos := math.Sin(angle), math.Cos(angle)

	for i := 0; i < cells; i++ {
		t := float64(i+1) / float64(cells)
		d := t * length

		x := center.X + d*sin
		y := center.Y - d*cos

		switch mode {
		case Curved:
			// Perpendicular bow: zero at both ends, peak at midpoint
			off := curve * length * math.Sin(math.Pi*t)
			x += off * -cos
			y += off * -sin
		case Wiggle:
			if disp != nil {
				dx, dy := disp.Displace(i, t)
				x += dx
				y += dy
			}
		}

		pts[i] = Point{X: x, Y: y}
	}
	return pts
}
