package sim

import "math"

// Snapshot is the per-tick scalar view of the apparatus handed to metrics
// and observers. Pressures are recomputed from the current heights, so a
// snapshot taken right after a tick is never stale.
type Snapshot struct {
	Tick             int
	BigHeight        float64
	SmallHeight      float64
	LeftPressure     float64
	RightPressure    float64
	ExternalPressure float64
}

// Imbalance is the absolute pressure difference at the connecting point.
func (s Snapshot) Imbalance() float64 {
	return math.Abs(s.LeftPressure - s.RightPressure)
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(s Snapshot)
}

type Config struct {
	Ticks int
}

type Result struct {
	Snapshots []Snapshot
	Metrics   map[string]float64
	TicksRun  int
}

// Series extracts one scalar trace from the snapshots for plotting.
func (r *Result) Series(f func(Snapshot) float64) []float64 {
	out := make([]float64, len(r.Snapshots))
	for i, s := range r.Snapshots {
		out[i] = f(s)
	}
	return out
}
