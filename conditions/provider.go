package conditions

import (
	"context"
	"time"
)

// Provider produces a fresh validated snapshot. Implementations own all
// blocking I/O; the rendering path never calls a Provider.
type Provider interface {
	Fetch(ctx context.Context) (*Snapshot, error)
	Name() string
}

// Synthetic generates local forecasts instead of fetching real data.
// Each Fetch reseeds from the previous state so successive snapshots
// differ but a fixed base seed replays the same sequence.
type Synthetic struct {
	seed uint64
}

func NewSynthetic(seed uint64) *Synthetic {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Synthetic{seed: seed}
}

func (s *Synthetic) Name() string {
	return "synthetic"
}

func (s *Synthetic) Fetch(ctx context.Context) (*Snapshot, error) {
	snap := Generate(s.seed, time.Now())
	s.seed = s.seed*6364136223846793005 + 1442695040888963407
	return snap, nil
}
