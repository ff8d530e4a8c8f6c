package metrics

import (
	"testing"

	"github.com/san-kum/hydrostat/internal/sim"
)

func snap(tick int, left, right float64) sim.Snapshot {
	return sim.Snapshot{Tick: tick, LeftPressure: left, RightPressure: right}
}

func TestImbalance(t *testing.T) {
	m := NewImbalance()

	m.Observe(snap(0, 5.0, 4.9))
	m.Observe(snap(1, 4.95, 4.95))

	if m.Value() != 0 {
		t.Errorf("expected final imbalance 0, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakImbalance(t *testing.T) {
	m := NewPeakImbalance()

	m.Observe(snap(0, 5.0, 4.9))
	m.Observe(snap(1, 5.0, 4.95))
	m.Observe(snap(2, 4.95, 4.95))

	want := 5.0 - 4.9
	if diff := m.Value() - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("expected peak %f, got %f", want, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestSettling(t *testing.T) {
	m := NewSettling(1e-6)

	m.Observe(snap(0, 5.0, 4.9))
	if m.Value() != -1 {
		t.Errorf("expected -1 before settling, got %f", m.Value())
	}

	m.Observe(snap(1, 4.95, 4.95))
	m.Observe(snap(2, 4.95, 4.95))
	if m.Value() != 1 {
		t.Errorf("expected settling at tick 1, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != -1 {
		t.Errorf("expected -1 after reset, got %f", m.Value())
	}
}

func TestSettlingAlreadyBalanced(t *testing.T) {
	m := NewSettling(1e-6)

	m.Observe(snap(0, 4.9, 4.9))
	if m.Value() != 0 {
		t.Errorf("expected settling at tick 0 for balanced start, got %f", m.Value())
	}
}
