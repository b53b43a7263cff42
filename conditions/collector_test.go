package conditions

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type stubProvider struct {
	fetches atomic.Int64
	fail    atomic.Bool
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Fetch(ctx context.Context) (*Snapshot, error) {
	p.fetches.Add(1)
	if p.fail.Load() {
		return nil, errors.New("upstream down")
	}
	return Generate(7, time.Now()), nil
}

func TestCollectorDeliversImmediately(t *testing.T) {
	provider := &stubProvider{}
	delivered := make(chan *Snapshot, 8)

	c := NewCollector(provider, time.Hour, func(s *Snapshot) {
		delivered <- s
	}, log.New(io.Discard))

	stop := c.Start(context.Background())
	defer stop()

	select {
	case snap := <-delivered:
		if snap == nil {
			t.Fatal("delivered nil snapshot")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery before the first ticker interval")
	}
}

func TestCollectorSkipsFailedFetches(t *testing.T) {
	provider := &stubProvider{}
	provider.fail.Store(true)

	var deliveries atomic.Int64
	c := NewCollector(provider, 10*time.Millisecond, func(*Snapshot) {
		deliveries.Add(1)
	}, log.New(io.Discard))

	stop := c.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for provider.fetches.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if provider.fetches.Load() < 3 {
		t.Fatal("collector stopped retrying after failures")
	}
	if deliveries.Load() != 0 {
		t.Errorf("failed fetches delivered %d snapshots", deliveries.Load())
	}

	// Recovery: the next successful fetch flows through
	provider.fail.Store(false)
	for deliveries.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	stop()

	if deliveries.Load() == 0 {
		t.Error("no delivery after the provider recovered")
	}
}

func TestCollectorStopWaits(t *testing.T) {
	provider := &stubProvider{}
	c := NewCollector(provider, 5*time.Millisecond, func(*Snapshot) {}, log.New(io.Discard))

	stop := c.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	stop()

	after := provider.fetches.Load()
	time.Sleep(30 * time.Millisecond)
	if provider.fetches.Load() != after {
		t.Error("fetches continued after stop returned")
	}
}
