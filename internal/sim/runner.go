package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/hydrostat/internal/vessel"
)

// Runner drives a vessel model for a fixed number of ticks, recording a
// per-tick trace in memory. Nothing is persisted; the caller decides what
// to do with the result.
type Runner struct {
	model     *vessel.Model
	metrics   []Metric
	observers []Observer
}

func New(m *vessel.Model) *Runner {
	return &Runner{
		model:     m,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Ticks <= 0 {
		return nil, fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}

	result := &Result{
		Snapshots: make([]Snapshot, 0, cfg.Ticks+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	r.record(result, 0)

	for i := 1; i <= cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.model.Tick()
		result.TicksRun++
		r.record(result, i)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) record(result *Result, tick int) {
	snap := Snapshot{
		Tick:             tick,
		BigHeight:        r.model.Big.Height,
		SmallHeight:      r.model.Small.Height,
		LeftPressure:     r.model.LeftPressure(),
		RightPressure:    r.model.RightPressure(),
		ExternalPressure: r.model.ExternalPressure,
	}

	for _, m := range r.metrics {
		m.Observe(snap)
	}
	for _, obs := range r.observers {
		obs.OnTick(snap)
	}

	result.Snapshots = append(result.Snapshots, snap)
}
