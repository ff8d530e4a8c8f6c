package sim

import (
	"context"
	"sync"

	"github.com/san-kum/hydrostat/internal/vessel"
)

// Sweep runs the same apparatus under a set of piston pressures, one
// independent model per pressure. Runs share nothing, so they execute
// concurrently.
type Sweep struct {
	cfg       vessel.Config
	pressures []float64

	// NewMetrics builds a fresh metric set per run; metrics hold state and
	// must not be shared across goroutines. May be nil.
	NewMetrics func() []Metric
}

func NewSweep(cfg vessel.Config, pressures []float64) *Sweep {
	return &Sweep{cfg: cfg, pressures: pressures}
}

func (s *Sweep) Run(ctx context.Context, runCfg Config) ([]*Result, error) {
	results := make([]*Result, len(s.pressures))
	errs := make([]error, len(s.pressures))

	var wg sync.WaitGroup
	for i, p := range s.pressures {
		wg.Add(1)
		go func(idx int, pressure float64) {
			defer wg.Done()

			m := vessel.New(s.cfg)
			m.ApplyPressureDelta(pressure)

			runner := New(m)
			if s.NewMetrics != nil {
				for _, metric := range s.NewMetrics() {
					runner.AddMetric(metric)
				}
			}

			results[idx], errs[idx] = runner.Run(ctx, runCfg)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
