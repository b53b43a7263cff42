package render

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/spectrum"
)

// CenterOrnament is the pulsing rainbow block at the clock pivot: a 3x3
// grid whose hue rotates with the second and whose brightness breathes
// on a per-cell phase.
type CenterOrnament struct {
	center  geometry.Point
	spacing float64
	cells   []Cell
	logger  *log.Logger
}

func NewCenterOrnament(center geometry.Point, spacing float64, logger *log.Logger) *CenterOrnament {
	return &CenterOrnament{
		center:  center,
		spacing: spacing,
		cells:   make([]Cell, parameter.CenterCells),
		logger:  logger,
	}
}

// Render computes the grid colors for this tick. Positions are fixed;
// only color changes, so after the first tick Flush degenerates to
// recolors.
func (o *CenterOrnament) Render(tc TickContext) []CellUpdate {
	sec := float64(tc.WallClock.Second()) + float64(tc.WallClock.Nanosecond())/1e9

	updates := make([]CellUpdate, len(o.cells))
	for i := range o.cells {
		row := i / parameter.CenterGridSide
		col := i % parameter.CenterGridSide

		x := o.center.X + (float64(col)-1)*o.spacing
		y := o.center.Y + (float64(row)-1)*o.spacing

		hue := math.Mod(sec*parameter.CenterHueRate+float64(i)*parameter.CenterHueStep, 360)
		pulse := parameter.CenterPulseBase +
			parameter.CenterPulseAmp*math.Sin(sec*parameter.CenterPulseFreq+float64(i)*parameter.CenterPulsePhi)

		updates[i] = CellUpdate{
			X:     int(math.Round(x)),
			Y:     int(math.Round(y)),
			Color: spectrum.HSV(hue, 0.8, pulse),
		}
	}
	return updates
}

func (o *CenterOrnament) Flush(sink Sink, updates []CellUpdate) {
	flushCells(sink, o.cells, updates, o.logger, "center")
}

func (o *CenterOrnament) Release(sink Sink) int {
	return releaseCells(sink, o.cells, o.logger, "center")
}
