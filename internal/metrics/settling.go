package metrics

import "github.com/san-kum/hydrostat/internal/sim"

// Settling records the first tick at which the pressure imbalance falls
// within tolerance. Value is -1 until that happens.
type Settling struct {
	name      string
	tolerance float64
	tick      int
	settled   bool
}

func NewSettling(tolerance float64) *Settling {
	return &Settling{
		name:      "settling_tick",
		tolerance: tolerance,
		tick:      -1,
	}
}

func (s *Settling) Name() string {
	return s.name
}

func (s *Settling) Observe(snap sim.Snapshot) {
	if s.settled {
		return
	}
	if snap.Imbalance() <= s.tolerance {
		s.tick = snap.Tick
		s.settled = true
	}
}

func (s *Settling) Value() float64 {
	return float64(s.tick)
}

func (s *Settling) Reset() {
	s.tick = -1
	s.settled = false
}
