package render

import (
	"time"

	"github.com/lixenwraith/windclock/conditions"
)

// TickContext provides one tick's state to renderers, passed by value.
// AnimTime is monotonic animation time in seconds, independent of the
// wall clock, used only to drive turbulence.
type TickContext struct {
	WallClock time.Time
	AnimTime  float64
	Snapshot  *conditions.Snapshot
}
