package render

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/windclock/conditions"
	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/spectrum"
)

type fakeSink struct {
	creates, moves, recolors int
	shows, hides, destroys   int
	next                     CellHandle

	failDestroyEvery int // fail every Nth destroy when > 0
	failCreate       bool
}

func (f *fakeSink) CreateCell() (CellHandle, error) {
	if f.failCreate {
		return 0, errors.New("create refused")
	}
	f.creates++
	f.next++
	return f.next, nil
}

func (f *fakeSink) MoveCell(h CellHandle, x, y int) error {
	f.moves++
	return nil
}

func (f *fakeSink) RecolorCell(h CellHandle, c RGB) error {
	f.recolors++
	return nil
}

func (f *fakeSink) ShowCell(h CellHandle) error {
	f.shows++
	return nil
}

func (f *fakeSink) HideCell(h CellHandle) error {
	f.hides++
	return nil
}

func (f *fakeSink) DestroyCell(h CellHandle) error {
	f.destroys++
	if f.failDestroyEvery > 0 && f.destroys%f.failDestroyEvery == 0 {
		return errors.New("destroy refused")
	}
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// midpointSnapshot has every sample at the exact middle of its value
// range
func midpointSnapshot(t *testing.T) *conditions.Snapshot {
	t.Helper()

	mid := func(r spectrum.Range) float64 { return (r.Min + r.Max) / 2 }
	var temps, winds, rain [conditions.Hours]float64
	probe := conditions.Generate(1, time.Now())
	for i := range temps {
		temps[i] = mid(probe.TempRange)
		winds[i] = mid(probe.WindRange)
		rain[i] = mid(probe.RainRange)
	}

	snap, err := conditions.New(temps[:], winds[:], rain[:], temps[0], 0, 0, time.Now())
	if err != nil {
		t.Fatalf("midpoint snapshot: %v", err)
	}
	return snap
}

func TestForecastIndex(t *testing.T) {
	tests := []struct {
		name  string
		cell  int
		cells int
		want  int
	}{
		{"base is now", 0, 30, 0},
		{"tip is horizon", 29, 30, 23},
		{"tip of short hand", 19, 20, 23},
		{"single cell", 0, 1, 0},
		{"midpoint", 15, 31, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForecastIndex(tt.cell, tt.cells); got != tt.want {
				t.Errorf("ForecastIndex(%d, %d) = %d, want %d", tt.cell, tt.cells, got, tt.want)
			}
		})
	}
}

func TestForecastIndexMonotonic(t *testing.T) {
	prev := -1
	for cell := 0; cell < 30; cell++ {
		idx := ForecastIndex(cell, 30)
		if idx < prev {
			t.Fatalf("index %d at cell %d decreased (prev %d)", idx, cell, prev)
		}
		if idx < 0 || idx > 23 {
			t.Fatalf("index %d at cell %d out of range", idx, cell)
		}
		prev = idx
	}
}

func TestRenderUniformGradientCollapses(t *testing.T) {
	// All-midpoint series on a straight hand must collapse to a solid
	// color; this pins the normalization math
	r := NewHandRenderer(HandSpec{
		Role: Minute, Cells: 25, Length: 130, Tag: spectrum.Temperature, Mode: geometry.Straight,
	}, geometry.Point{X: 200, Y: 200}, testLogger())

	updates := r.Render(TickContext{
		WallClock: at(10, 20, 30, 0),
		Snapshot:  midpointSnapshot(t),
	})

	if len(updates) != 25 {
		t.Fatalf("got %d updates, want 25", len(updates))
	}
	for i, u := range updates[1:] {
		if u.Color != updates[0].Color {
			t.Errorf("cell %d color %v differs from base %v", i+1, u.Color, updates[0].Color)
		}
	}
}

func TestRenderNoSnapshot(t *testing.T) {
	// Before the first conditions swap the hand still renders, just
	// black
	r := NewHandRenderer(HandSpec{
		Role: Second, Cells: 10, Length: 100, Tag: spectrum.Wind, Mode: geometry.Wiggle, Seed: 3,
	}, geometry.Point{}, testLogger())

	updates := r.Render(TickContext{WallClock: at(1, 2, 3, 0)})
	if len(updates) != 10 {
		t.Fatalf("got %d updates, want 10", len(updates))
	}
}

func TestFlushElidesNoOps(t *testing.T) {
	sink := &fakeSink{}
	r := NewHandRenderer(HandSpec{
		Role: Hour, Cells: 20, Length: 100, Tag: spectrum.Precipitation, Mode: geometry.Straight,
	}, geometry.Point{X: 100, Y: 100}, testLogger())

	tc := TickContext{WallClock: at(3, 0, 0, 0), Snapshot: midpointSnapshot(t)}

	updates := r.Render(tc)
	r.Flush(sink, updates)

	if sink.creates != 20 || sink.moves != 20 || sink.recolors != 20 || sink.shows != 20 {
		t.Fatalf("first flush: creates=%d moves=%d recolors=%d shows=%d, want 20 each",
			sink.creates, sink.moves, sink.recolors, sink.shows)
	}

	// Same tick state again: everything is elided
	r.Flush(sink, r.Render(tc))
	if sink.creates != 20 || sink.moves != 20 || sink.recolors != 20 || sink.shows != 20 {
		t.Errorf("identical flush issued calls: creates=%d moves=%d recolors=%d shows=%d",
			sink.creates, sink.moves, sink.recolors, sink.shows)
	}

	// An hour later the hand has moved: moves happen, colors are still
	// uniform midpoint so recolors stay elided
	later := TickContext{WallClock: at(4, 0, 0, 0), Snapshot: tc.Snapshot}
	r.Flush(sink, r.Render(later))
	if sink.moves == 20 {
		t.Error("expected move calls after the hand angle changed")
	}
	if sink.recolors != 20 {
		t.Errorf("recolors = %d, want still 20 (uniform color)", sink.recolors)
	}
}

func TestFlushSkipsFailedCreate(t *testing.T) {
	sink := &fakeSink{failCreate: true}
	r := NewHandRenderer(HandSpec{
		Role: Hour, Cells: 5, Length: 50, Tag: spectrum.Temperature, Mode: geometry.Straight,
	}, geometry.Point{}, testLogger())

	// Must not panic or issue dependent calls for uncreated cells
	r.Flush(sink, r.Render(TickContext{WallClock: at(1, 0, 0, 0), Snapshot: midpointSnapshot(t)}))
	if sink.moves != 0 || sink.shows != 0 {
		t.Errorf("dependent calls issued for uncreated cells: moves=%d shows=%d", sink.moves, sink.shows)
	}
}

func TestReleaseDestroysEverythingDespiteFailures(t *testing.T) {
	sink := &fakeSink{failDestroyEvery: 3}
	r := NewHandRenderer(HandSpec{
		Role: Second, Cells: 30, Length: 160, Tag: spectrum.Wind, Mode: geometry.Straight,
	}, geometry.Point{}, testLogger())

	r.Flush(sink, r.Render(TickContext{WallClock: at(2, 0, 0, 0), Snapshot: midpointSnapshot(t)}))

	released := r.Release(sink)
	if released != 30 {
		t.Errorf("released %d cells, want 30", released)
	}
	if sink.destroys != 30 {
		t.Errorf("sink saw %d destroy calls, want 30 despite failures", sink.destroys)
	}

	// Second release is a no-op
	if again := r.Release(sink); again != 0 {
		t.Errorf("second release freed %d cells, want 0", again)
	}
	if sink.destroys != 30 {
		t.Errorf("second release issued destroys: %d", sink.destroys)
	}
}
