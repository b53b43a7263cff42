package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/windclock/audio"
	"github.com/lixenwraith/windclock/conditions"
	"github.com/lixenwraith/windclock/config"
	"github.com/lixenwraith/windclock/core"
	"github.com/lixenwraith/windclock/engine"
	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/render"
	"github.com/lixenwraith/windclock/terminal"
)

var markerColor = render.RGB{R: 90, G: 90, B: 110}

func main() {
	configPath := flag.String("config", "", "path to TOML config")
	seed := flag.Uint64("seed", 0, "override wiggle/forecast seed (0 = from config)")
	source := flag.String("source", "", "conditions source: synthetic | openmeteo")
	lat := flag.Float64("lat", 0, "latitude for openmeteo source")
	lon := flag.Float64("lon", 0, "longitude for openmeteo source")
	chime := flag.Bool("chime", false, "enable minute/hour chime")
	logPath := flag.String("log", "", "log file (default: discard)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "windclock: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *lat != 0 || *lon != 0 {
		cfg.Latitude, cfg.Longitude = *lat, *lon
	}
	if *chime {
		cfg.Chime = true
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "windclock: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "windclock: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func run(cfg *config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetRestore(screen.Fini)
	defer screen.Fini()

	sink := terminal.NewScreenSink(screen)

	width, height := screen.Size()
	center, scale := layout(cfg, width, height)

	specs, err := handSpecs(cfg, scale)
	if err != nil {
		return err
	}

	eng := engine.New(sink, engine.Config{
		Center:       center,
		Hands:        specs,
		BaseInterval: cfg.TickInterval(),
		Ornament:     cfg.Ornament,
	}, logger)

	// Seed with synthetic data so the dial is never blank while the
	// first real fetch is in flight
	if err := eng.SetConditions(conditions.Generate(cfg.Seed, time.Now())); err != nil {
		return fmt.Errorf("initial conditions: %w", err)
	}

	if err := placeMarkers(sink, center, specs); err != nil {
		logger.Warn("dial markers unavailable", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	collector := conditions.NewCollector(provider, cfg.RefreshInterval(), func(s *conditions.Snapshot) {
		_ = eng.SetConditions(s)
	}, logger)
	stopCollector := collector.Start(ctx)
	defer stopCollector()

	var ch audio.Chime
	if cfg.Chime {
		if err := ch.Init(); err != nil {
			logger.Warn("chime disabled", "err", err)
		} else {
			defer ch.Close()
			core.Go(func() { chimeLoop(ctx, &ch) })
		}
	}

	eng.Start()
	defer eng.Stop()

	logger.Info("windclock running",
		"source", provider.Name(), "hands", len(specs), "tick", cfg.TickInterval())

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}

// layout picks the dial center in logical units and a scale factor that
// fits the configured hand lengths inside the terminal
func layout(cfg *config.Config, width, height int) (geometry.Point, float64) {
	logicalW := float64(width) / 2 // sink doubles x for aspect
	logicalH := float64(height)

	radius := logicalW
	if logicalH < radius {
		radius = logicalH
	}
	radius = radius/2 - 2

	longest := 0.0
	for _, h := range cfg.Hands {
		if h.Length > longest {
			longest = h.Length
		}
	}
	scale := 1.0
	if longest > 0 && radius > 0 {
		scale = radius / longest
	}

	return geometry.Point{X: logicalW / 2, Y: logicalH / 2}, scale
}

func handSpecs(cfg *config.Config, scale float64) ([]render.HandSpec, error) {
	specs := make([]render.HandSpec, 0, len(cfg.Hands))
	for _, h := range cfg.Hands {
		role, err := parseRole(h.Role)
		if err != nil {
			return nil, err
		}
		tag, err := config.ParseTag(h.Spectrum)
		if err != nil {
			return nil, err
		}
		mode, err := config.ParseMode(h.Mode)
		if err != nil {
			return nil, err
		}
		curve := h.Curve
		if mode == geometry.Curved && curve == 0 {
			curve = parameter.CurveFactor
		}
		specs = append(specs, render.HandSpec{
			Role:    role,
			Cells:   h.Cells,
			Length:  h.Length * scale,
			Tag:     tag,
			Mode:    mode,
			Curve:   curve,
			Cadence: time.Duration(h.CadenceMillis) * time.Millisecond,
			Seed:    cfg.Seed,
		})
	}
	return specs, nil
}

func parseRole(s string) (render.Role, error) {
	switch s {
	case "hour":
		return render.Hour, nil
	case "minute":
		return render.Minute, nil
	case "second":
		return render.Second, nil
	}
	return 0, fmt.Errorf("config: unknown hand role %q", s)
}

// placeMarkers puts twelve static dim cells just outside the longest
// hand, the minimal dial face
func placeMarkers(sink render.Sink, center geometry.Point, specs []render.HandSpec) error {
	longest := 0.0
	for _, s := range specs {
		if s.Length > longest {
			longest = s.Length
		}
	}
	radius := longest + 2

	for i := 0; i < 12; i++ {
		pts := geometry.Positions(center, float64(i)*math.Pi/6, radius, 1, geometry.Straight, 0, nil)
		h, err := sink.CreateCell()
		if err != nil {
			return err
		}
		if err := sink.MoveCell(h, int(pts[0].X+0.5), int(pts[0].Y+0.5)); err != nil {
			return err
		}
		if err := sink.RecolorCell(h, markerColor); err != nil {
			return err
		}
		if err := sink.ShowCell(h); err != nil {
			return err
		}
	}
	return nil
}

func newProvider(cfg *config.Config) (conditions.Provider, error) {
	switch cfg.Source {
	case "", "synthetic":
		return conditions.NewSynthetic(cfg.Seed), nil
	case "openmeteo":
		return conditions.NewOpenMeteo(cfg.Latitude, cfg.Longitude), nil
	}
	return nil, fmt.Errorf("unknown conditions source %q", cfg.Source)
}

// chimeLoop strikes on minute and hour boundaries until ctx is done
func chimeLoop(ctx context.Context, ch *audio.Chime) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if now.Second() != 0 {
				continue
			}
			if now.Minute() == 0 {
				ch.Hour()
			} else {
				ch.Minute()
			}
		case <-ctx.Done():
			return
		}
	}
}
