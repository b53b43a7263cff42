package render

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/spectrum"
	"github.com/lixenwraith/windclock/wiggle"
)

// HandRenderer computes the per-tick cell stream for one hand and owns
// that hand's cells in the sink. Render is pure; Flush mutates cell
// state and issues sink calls, so the two must not run for the same hand
// concurrently.
type HandRenderer struct {
	spec   HandSpec
	center geometry.Point
	cells  []Cell
	field  *wiggle.Field // nil unless spec.Mode is Wiggle
	logger *log.Logger
}

func NewHandRenderer(spec HandSpec, center geometry.Point, logger *log.Logger) *HandRenderer {
	r := &HandRenderer{
		spec:   spec,
		center: center,
		cells:  make([]Cell, spec.Cells),
		logger: logger,
	}
	if spec.Mode == geometry.Wiggle {
		r.field = wiggle.NewField(spec.Cells, spec.Seed)
	}
	return r
}

func (r *HandRenderer) Spec() HandSpec {
	return r.spec
}

// Render computes the target position and color of every cell for this
// tick. No side effects; the caller diffs via Flush.
func (r *HandRenderer) Render(tc TickContext) []CellUpdate {
	n := r.spec.Cells
	if n == 0 {
		return nil
	}

	angle := r.spec.Angle(tc.WallClock)

	var disp geometry.Displacer
	if r.field != nil && tc.Snapshot != nil {
		disp = wiggle.Sample{
			Field:    r.field,
			AnimTime: tc.AnimTime,
			Wind:     tc.Snapshot.CurrentWind,
			Gust:     tc.Snapshot.CurrentGust,
		}
	}

	pts := geometry.Positions(r.center, angle, r.spec.Length, n, r.spec.Mode, r.spec.Curve, disp)

	updates := make([]CellUpdate, n)
	for i, p := range pts {
		updates[i] = CellUpdate{
			X:     int(math.Round(p.X)),
			Y:     int(math.Round(p.Y)),
			Color: r.cellColor(tc, i),
		}
	}
	return updates
}

// cellColor maps the cell's position along the hand onto the forecast
// horizon: the base always shows "now", the tip the 24-hour-out value.
func (r *HandRenderer) cellColor(tc TickContext, i int) RGB {
	if tc.Snapshot == nil {
		return RGB{}
	}
	series, rng := tc.Snapshot.Series(r.spec.Tag)

	idx := ForecastIndex(i, r.spec.Cells)
	return spectrum.Map(series[idx], rng, r.spec.Tag)
}

// ForecastIndex converts a cell index to an hour slot: cell 0 maps to
// hour 0 and the tip cell to hour 23, interior cells by floor of linear
// progress.
func ForecastIndex(cell, cells int) int {
	if cells <= 1 {
		return 0
	}
	progress := float64(cell) / float64(cells-1)
	idx := int(progress * 23)
	if idx > 23 {
		idx = 23
	}
	return idx
}

// Flush diffs computed updates against last-known cell state and issues
// only the sink calls that change something. A failed call is logged
// and skipped; the rest of the hand still updates.
func (r *HandRenderer) Flush(sink Sink, updates []CellUpdate) {
	flushCells(sink, r.cells, updates, r.logger, r.spec.Role.String())
}

// Release destroys every created cell in a single pass. Failures are
// logged, never propagated, and never stop the sweep: partial cleanup is
// not acceptable once shutdown has begun.
func (r *HandRenderer) Release(sink Sink) int {
	return releaseCells(sink, r.cells, r.logger, r.spec.Role.String())
}

func flushCells(sink Sink, cells []Cell, updates []CellUpdate, logger *log.Logger, owner string) {
	for i := range updates {
		if i >= len(cells) {
			return
		}
		c := &cells[i]
		u := updates[i]

		if !c.Created {
			h, err := sink.CreateCell()
			if err != nil {
				logger.Warn("cell create failed", "owner", owner, "cell", i, "err", err)
				continue
			}
			c.Handle = h
			c.Created = true
		}

		if !c.Visible || u.X != c.X || u.Y != c.Y {
			if err := sink.MoveCell(c.Handle, u.X, u.Y); err != nil {
				logger.Warn("cell move failed", "owner", owner, "cell", i, "err", err)
				continue
			}
			c.X, c.Y = u.X, u.Y
		}

		if !c.Visible || u.Color != c.Color {
			if err := sink.RecolorCell(c.Handle, u.Color); err != nil {
				logger.Warn("cell recolor failed", "owner", owner, "cell", i, "err", err)
				continue
			}
			c.Color = u.Color
		}

		if !c.Visible {
			if err := sink.ShowCell(c.Handle); err != nil {
				logger.Warn("cell show failed", "owner", owner, "cell", i, "err", err)
				continue
			}
			c.Visible = true
		}
	}
}

func releaseCells(sink Sink, cells []Cell, logger *log.Logger, owner string) int {
	released := 0
	for i := range cells {
		c := &cells[i]
		if !c.Created {
			continue
		}
		if err := sink.DestroyCell(c.Handle); err != nil {
			logger.Warn("cell destroy failed", "owner", owner, "cell", i, "err", err)
		}
		c.Created = false
		c.Visible = false
		released++
	}
	return released
}
