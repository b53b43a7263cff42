// Interactive explorer for the wind tiers: one wiggling hand pinned at
// 3 o'clock, keys adjust wind and gust so each tier's character can be
// tuned by eye.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/spectrum"
	"github.com/lixenwraith/windclock/wiggle"
)

// ==========================================
// TUNING VARIABLES - PLAY WITH THESE
// ==========================================

var (
	Cells     = 30
	Seed      = uint64(42)
	FrameRate = 10 // ticks per second
	WindStep  = 1.0
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wiggle-sandbox: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "wiggle-sandbox: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	field := wiggle.NewField(Cells, Seed)

	wind := 15.0
	gust := 22.0
	start := time.Now()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(FrameRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
				return
			case key.Rune() == '+' || key.Rune() == '=':
				wind += WindStep
			case key.Rune() == '-':
				wind = math.Max(0, wind-WindStep)
			case key.Rune() == 'G':
				gust += WindStep
			case key.Rune() == 'g':
				gust = math.Max(wind, gust-WindStep)
			}
			if gust < wind {
				gust = wind
			}

		case <-ticker.C:
			draw(screen, field, wind, gust, time.Since(start).Seconds())
		}
	}
}

func draw(screen tcell.Screen, field *wiggle.Field, wind, gust, animTime float64) {
	screen.Clear()

	w, h := screen.Size()
	center := geometry.Point{X: float64(w) / 4, Y: float64(h) / 2}
	length := math.Min(float64(w)/4, float64(h)/2) - 2

	sample := wiggle.Sample{Field: field, AnimTime: animTime, Wind: wind, Gust: gust}
	pts := geometry.Positions(center, math.Pi/2, length, field.Cells(), geometry.Wiggle, 0, sample)

	rng := spectrum.Range{Min: parameter.WindRangeMin, Max: parameter.WindRangeMax}
	c := spectrum.Map(wind, rng, spectrum.Wind)
	for _, p := range pts {
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		x := int(math.Round(p.X)) * 2
		screen.SetContent(x, int(math.Round(p.Y)), '█', nil, style)
		screen.SetContent(x+1, int(math.Round(p.Y)), '█', nil, style)
	}

	status := fmt.Sprintf(" wind %.0f mph  gust %.0f mph  tier %s  [+/- wind, g/G gust, q quit] ",
		wind, gust, tierName(wind))
	for i, r := range status {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}

	screen.Show()
}

func tierName(wind float64) string {
	switch {
	case wind <= parameter.WindCalmMax:
		return "calm"
	case wind <= parameter.WindLightMax:
		return "light"
	case wind <= parameter.WindModerateMax:
		return "moderate"
	default:
		return "strong"
	}
}
