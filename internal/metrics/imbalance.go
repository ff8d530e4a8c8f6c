package metrics

import (
	"math"

	"github.com/san-kum/hydrostat/internal/sim"
)

// Imbalance reports the pressure difference at the connecting point as of
// the last observed tick.
type Imbalance struct {
	name string
	last float64
}

func NewImbalance() *Imbalance {
	return &Imbalance{name: "imbalance"}
}

func (i *Imbalance) Name() string {
	return i.name
}

func (i *Imbalance) Observe(s sim.Snapshot) {
	i.last = s.Imbalance()
}

func (i *Imbalance) Value() float64 {
	return i.last
}

func (i *Imbalance) Reset() {
	i.last = 0
}

// PeakImbalance tracks the largest pressure difference seen over a run,
// which for a stepped piston is the disturbance right after the step.
type PeakImbalance struct {
	name string
	peak float64
}

func NewPeakImbalance() *PeakImbalance {
	return &PeakImbalance{name: "peak_imbalance"}
}

func (p *PeakImbalance) Name() string {
	return p.name
}

func (p *PeakImbalance) Observe(s sim.Snapshot) {
	p.peak = math.Max(p.peak, s.Imbalance())
}

func (p *PeakImbalance) Value() float64 {
	return p.peak
}

func (p *PeakImbalance) Reset() {
	p.peak = 0
}
