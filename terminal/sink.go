// Package terminal realizes clock cells on a tcell screen. Each cell is
// a colored block glyph at a screen coordinate; tcell's internal buffer
// diffing makes the full redraw per Flip cheap and tear-free.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/windclock/render"
)

const cellRune = '█'

// ScreenSink implements render.Sink on a tcell screen. XScale stretches
// the x axis to compensate for terminal cell aspect ratio, so the dial
// reads as a circle rather than an ellipse.
type ScreenSink struct {
	mu     sync.Mutex
	screen tcell.Screen
	cells  map[render.CellHandle]*screenCell
	next   render.CellHandle
	xscale int
	bg     tcell.Color
}

type screenCell struct {
	x, y    int
	color   render.RGB
	visible bool
}

func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{
		screen: screen,
		cells:  make(map[render.CellHandle]*screenCell),
		xscale: 2,
		bg:     tcell.NewRGBColor(10, 10, 16),
	}
}

// SetXScale overrides the horizontal stretch factor (minimum 1)
func (s *ScreenSink) SetXScale(scale int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scale < 1 {
		scale = 1
	}
	s.xscale = scale
}

func (s *ScreenSink) CreateCell() (render.CellHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.cells[s.next] = &screenCell{}
	return s.next, nil
}

func (s *ScreenSink) MoveCell(h render.CellHandle, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cells[h]
	if !ok {
		return fmt.Errorf("terminal: unknown cell handle %d", h)
	}
	c.x, c.y = x, y
	return nil
}

func (s *ScreenSink) RecolorCell(h render.CellHandle, color render.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cells[h]
	if !ok {
		return fmt.Errorf("terminal: unknown cell handle %d", h)
	}
	c.color = color
	return nil
}

func (s *ScreenSink) ShowCell(h render.CellHandle) error {
	return s.setVisible(h, true)
}

func (s *ScreenSink) HideCell(h render.CellHandle) error {
	return s.setVisible(h, false)
}

func (s *ScreenSink) setVisible(h render.CellHandle, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cells[h]
	if !ok {
		return fmt.Errorf("terminal: unknown cell handle %d", h)
	}
	c.visible = v
	return nil
}

func (s *ScreenSink) DestroyCell(h render.CellHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cells[h]; !ok {
		return fmt.Errorf("terminal: unknown cell handle %d", h)
	}
	delete(s.cells, h)
	return nil
}

// Live returns the number of cells currently allocated
func (s *ScreenSink) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cells)
}

// Flip presents the current cell state: redraw everything into tcell's
// back buffer and Show, letting tcell send only the terminal diff
func (s *ScreenSink) Flip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
	for _, c := range s.cells {
		if !c.visible {
			continue
		}
		style := tcell.StyleDefault.
			Background(s.bg).
			Foreground(tcell.NewRGBColor(int32(c.color.R), int32(c.color.G), int32(c.color.B)))
		sx := c.x * s.xscale
		for i := 0; i < s.xscale; i++ {
			s.screen.SetContent(sx+i, c.y, cellRune, nil, style)
		}
	}
	s.screen.Show()
}
