// Package engine drives the clock: it owns the three hand renderers,
// the current conditions snapshot, and the tick loop. All hand and cell
// state is owned by the single tick goroutine; the only cross-flow
// communication is the atomic snapshot swap.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/windclock/conditions"
	"github.com/lixenwraith/windclock/core"
	"github.com/lixenwraith/windclock/geometry"
	"github.com/lixenwraith/windclock/parameter"
	"github.com/lixenwraith/windclock/render"
)

// Config is the static engine layout
type Config struct {
	Center       geometry.Point
	Hands        []render.HandSpec
	BaseInterval time.Duration // tick cadence; hands re-render on their own Cadence
	Ornament     bool          // draw the pulsing center block
}

// Engine is a two-state machine: Idle on construction, Running between
// Start and Stop. Stop releases every cell before returning and the
// engine stays Idle afterwards.
type Engine struct {
	sink     render.Sink
	hands    []*render.HandRenderer
	center   *render.CenterOrnament
	interval time.Duration
	logger   *log.Logger

	clock *AnimationClock
	snap  atomic.Pointer[conditions.Snapshot]

	nextDue []time.Time // per-hand render deadline

	running   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	tickCount atomic.Uint64
}

func New(sink render.Sink, cfg Config, logger *log.Logger) *Engine {
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = parameter.BaseTickInterval
	}

	e := &Engine{
		sink:     sink,
		interval: cfg.BaseInterval,
		logger:   logger,
		clock:    NewAnimationClock(),
		nextDue:  make([]time.Time, len(cfg.Hands)),
		stopChan: make(chan struct{}),
	}

	for _, spec := range cfg.Hands {
		e.hands = append(e.hands, render.NewHandRenderer(spec, cfg.Center, logger))
	}
	if cfg.Ornament {
		e.center = render.NewCenterOrnament(cfg.Center, parameter.CenterSpacing, logger)
	}
	return e
}

// SetConditions validates and atomically swaps in a new snapshot. A
// rejected snapshot leaves the last good one in place; the renderer
// never observes a half-updated or malformed series.
func (e *Engine) SetConditions(snap *conditions.Snapshot) error {
	if err := snap.Validate(); err != nil {
		e.logger.Warn("rejected conditions snapshot", "err", err)
		return err
	}
	e.snap.Store(snap)
	return nil
}

// Conditions returns the snapshot currently in effect, nil before the
// first SetConditions
func (e *Engine) Conditions() *conditions.Snapshot {
	return e.snap.Load()
}

// Ticks returns the number of completed ticks
func (e *Engine) Ticks() uint64 {
	return e.tickCount.Load()
}

// Running reports whether the tick loop is active
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Start transitions Idle to Running and launches the tick loop. The
// engine is one-shot: after Stop it cannot be started again.
func (e *Engine) Start() {
	if e.running.CompareAndSwap(false, true) {
		e.wg.Add(1)
		core.Go(e.loop)
	}
}

// Stop halts the tick loop, then releases all owned cells in a single
// pass. Release failures are logged, not propagated; every cell is
// still attempted. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		if e.running.CompareAndSwap(true, false) {
			close(e.stopChan)
			e.wg.Wait()
		}
		e.releaseAll()
	})
}

func (e *Engine) releaseAll() {
	released := 0
	for _, h := range e.hands {
		released += h.Release(e.sink)
	}
	if e.center != nil {
		released += e.center.Release(e.sink)
	}
	if f, ok := e.sink.(render.Flipper); ok {
		f.Flip()
	}
	e.logger.Info("engine stopped", "cells_released", released, "ticks", e.tickCount.Load())
}

// loop runs ticks on a drift-corrected deadline so the hands never lag
// true time even if a tick overruns
func (e *Engine) loop() {
	defer e.wg.Done()

	deadline := time.Now().Add(e.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		now := time.Now()
		if !now.Before(deadline) {
			e.tick(now)
			e.tickCount.Add(1)

			deadline = deadline.Add(e.interval)
			if now.Sub(deadline) > e.interval*2 {
				deadline = now.Add(e.interval)
			}
		}

		sleep := time.Until(deadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-e.stopChan:
			return
		}
	}
}

// tick renders each hand that is due. Cooperative and non-reentrant:
// the next tick cannot begin while this one is issuing sink calls.
func (e *Engine) tick(now time.Time) {
	tc := render.TickContext{
		WallClock: now,
		AnimTime:  e.clock.Seconds(),
		Snapshot:  e.snap.Load(),
	}

	for i, h := range e.hands {
		if now.Before(e.nextDue[i]) {
			continue
		}
		cadence := h.Spec().Cadence
		if cadence <= 0 {
			cadence = e.interval
		}
		e.nextDue[i] = now.Add(cadence)

		h.Flush(e.sink, h.Render(tc))
	}

	if e.center != nil {
		e.center.Flush(e.sink, e.center.Render(tc))
	}

	if f, ok := e.sink.(render.Flipper); ok {
		f.Flip()
	}
}
