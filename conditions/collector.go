package conditions

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Collector refreshes conditions from a Provider on a fixed cadence and
// delivers each validated snapshot through a callback. A failed or
// rejected fetch is logged and the previous snapshot stays in effect,
// so the clock keeps rendering the last good data.
type Collector struct {
	provider Provider
	interval time.Duration
	deliver  func(*Snapshot)
	logger   *log.Logger
}

func NewCollector(provider Provider, interval time.Duration, deliver func(*Snapshot), logger *log.Logger) *Collector {
	return &Collector{
		provider: provider,
		interval: interval,
		deliver:  deliver,
		logger:   logger,
	}
}

// Start fetches once immediately, then on the ticker until ctx is
// canceled. The returned function stops collection and waits for the
// loop to exit.
func (c *Collector) Start(ctx context.Context) func() {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.fetchOnce(runCtx)
		for {
			select {
			case <-ticker.C:
				c.fetchOnce(runCtx)
			case <-runCtx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (c *Collector) fetchOnce(ctx context.Context) {
	snap, err := c.provider.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("conditions refresh failed, keeping last snapshot",
				"provider", c.provider.Name(), "err", err)
		}
		return
	}
	c.logger.Debug("conditions refreshed",
		"provider", c.provider.Name(),
		"wind", snap.CurrentWind, "gust", snap.CurrentGust, "temp", snap.CurrentTemp)
	c.deliver(snap)
}
