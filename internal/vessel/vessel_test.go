package vessel

import (
	"math"
	"reflect"
	"testing"
)

func TestNewGeometry(t *testing.T) {
	m := New(DefaultConfig())

	if m.Big.BottomLeft.X != -0.75 || m.Big.BottomLeft.Y != -0.5 {
		t.Errorf("unexpected big bottom-left: %+v", m.Big.BottomLeft)
	}
	if m.Big.BottomRight.X != -0.25 {
		t.Errorf("expected big bottom-right x -0.25, got %f", m.Big.BottomRight.X)
	}
	if m.Big.TopLeft.Y != 0.0 {
		t.Errorf("expected big top edge at 0, got %f", m.Big.TopLeft.Y)
	}
	if m.Small.BottomLeft.X != 0.5 || m.Small.BottomRight.X != 0.75 {
		t.Errorf("unexpected small walls: %+v %+v", m.Small.BottomLeft, m.Small.BottomRight)
	}

	wantPressure := 0.5 * DefaultDensity * DefaultGravity
	if math.Abs(m.Big.Pressure-wantPressure) > 1e-12 {
		t.Errorf("expected initial pressure %f, got %f", wantPressure, m.Big.Pressure)
	}
	if m.Big.Pressure != m.Small.Pressure {
		t.Errorf("equal heights should give equal pressures, got %f vs %f", m.Big.Pressure, m.Small.Pressure)
	}
}

func TestApplyPressureDelta(t *testing.T) {
	m := New(DefaultConfig())

	m.ApplyPressureDelta(0.1)
	m.ApplyPressureDelta(0.1)
	if math.Abs(m.ExternalPressure-0.2) > 1e-12 {
		t.Errorf("expected external pressure 0.2, got %f", m.ExternalPressure)
	}

	// Unconstrained accumulator: negative values are legal.
	m.ApplyPressureDelta(-5.0)
	if math.Abs(m.ExternalPressure+4.8) > 1e-12 {
		t.Errorf("expected external pressure -4.8, got %f", m.ExternalPressure)
	}
}

func TestBalancedTickIsNoOp(t *testing.T) {
	m := New(DefaultConfig())

	before := *m
	m.Tick()
	if *m != before {
		t.Errorf("balanced tick changed state: %+v -> %+v", before, *m)
	}

	// Still a no-op on repeat.
	m.Tick()
	if *m != before {
		t.Error("second balanced tick changed state")
	}
}

func TestPistonConvergence(t *testing.T) {
	m := New(DefaultConfig())
	m.ApplyPressureDelta(0.1)

	prevDiff := math.Abs(m.LeftPressure() - m.RightPressure())
	for i := 0; i < 50; i++ {
		m.Tick()
		diff := math.Abs(m.LeftPressure() - m.RightPressure())
		if diff > prevDiff+1e-12 {
			t.Fatalf("tick %d increased pressure imbalance: %g -> %g", i, prevDiff, diff)
		}
		prevDiff = diff
	}

	// big.P + externalPressure == small.P at equilibrium.
	left := m.Big.Height*m.Density*m.Gravity + 0.1
	right := m.Small.Height * m.Density * m.Gravity
	if math.Abs(left-right) > 1e-9 {
		t.Errorf("not at equilibrium: left %f, right %f", left, right)
	}

	// Pushing the piston drains the big side into the small one.
	if m.Small.Height <= m.Big.Height {
		t.Errorf("expected small column above big, got %f <= %f", m.Small.Height, m.Big.Height)
	}
}

func TestConvergenceFromImbalance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Big.Height = 0.8
	cfg.Small.Height = 0.3
	m := New(cfg)

	prevDiff := math.Abs(m.LeftPressure() - m.RightPressure())
	for i := 0; i < 50; i++ {
		m.Tick()
		diff := math.Abs(m.LeftPressure() - m.RightPressure())
		if diff > prevDiff+1e-12 {
			t.Fatalf("tick %d increased pressure imbalance: %g -> %g", i, prevDiff, diff)
		}
		prevDiff = diff
	}

	if prevDiff > 1e-9 {
		t.Errorf("pressures did not converge, residual imbalance %g", prevDiff)
	}
}

func TestGuardRefusesDrainingPastEmpty(t *testing.T) {
	m := New(DefaultConfig())
	m.ApplyPressureDelta(-100)

	// The single jump would pull the small column far below empty, so the
	// guard must freeze the state entirely, and stay frozen.
	before := *m
	m.Tick()
	after1 := *m
	m.Tick()
	after2 := *m

	if after1.Big.Height != before.Big.Height || after1.Small.Height != before.Small.Height {
		t.Errorf("guarded tick changed heights: %+v", after1)
	}
	if after1 != after2 {
		t.Error("guarded tick is not idempotent")
	}
	if m.Big.Height < 0 || m.Small.Height < 0 {
		t.Errorf("negative height reached: big %f, small %f", m.Big.Height, m.Small.Height)
	}
}

func TestGradualPushNeverGoesNegative(t *testing.T) {
	m := New(DefaultConfig())

	for i := 0; i < 200; i++ {
		m.ApplyPressureDelta(0.1)
		m.Tick()
		if m.Big.Height < 0 {
			t.Fatalf("big height went negative at step %d: %f", i, m.Big.Height)
		}
		if m.Small.Height < 0 {
			t.Fatalf("small height went negative at step %d: %f", i, m.Small.Height)
		}
	}

	// 200 piston steps is far more than needed to empty the big side.
	if m.Big.Height > 0.01 {
		t.Errorf("expected big side near empty, got height %f", m.Big.Height)
	}
}

func TestGradualVacuumDrainsSmallSide(t *testing.T) {
	m := New(DefaultConfig())

	for i := 0; i < 200; i++ {
		m.ApplyPressureDelta(-0.1)
		m.Tick()
		if m.Small.Height < 0 {
			t.Fatalf("small height went negative at step %d: %f", i, m.Small.Height)
		}
	}

	if m.Small.Height > 0.01 {
		t.Errorf("expected small side near empty, got height %f", m.Small.Height)
	}
	if m.Big.Height <= 0.5 {
		t.Errorf("expected vacuum to raise the big column, got height %f", m.Big.Height)
	}
}

func TestGeometryTracksHeights(t *testing.T) {
	m := New(DefaultConfig())
	m.ApplyPressureDelta(0.3)

	for i := 0; i < 10; i++ {
		m.Tick()

		if got := m.Big.BottomLeft.Y + m.Big.Height; math.Abs(m.Big.TopLeft.Y-got) > 1e-12 {
			t.Fatalf("big top edge out of sync: %f vs %f", m.Big.TopLeft.Y, got)
		}
		if m.Big.TopLeft.Y != m.Big.TopRight.Y {
			t.Fatal("big top edge not level")
		}
		if m.Small.TopLeft.Y != m.Small.TopRight.Y {
			t.Fatal("small top edge not level")
		}

		// The small height is re-derived from geometry after each tick.
		derived := m.Small.TopLeft.Y - m.Small.BottomLeft.Y
		if m.Small.Height != derived {
			t.Fatalf("small height %g not derived from geometry %g", m.Small.Height, derived)
		}
	}
}

func TestWidthDoesNotAffectEquilibrium(t *testing.T) {
	narrow := DefaultConfig()
	narrow.Small.Width = 0.05

	wide := DefaultConfig()
	wide.Small.Width = 0.45

	a, b := New(narrow), New(wide)
	a.ApplyPressureDelta(0.2)
	b.ApplyPressureDelta(0.2)

	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
	}

	if math.Abs(a.Small.Height-b.Small.Height) > 1e-12 {
		t.Errorf("cross-section changed equilibrium height: %f vs %f", a.Small.Height, b.Small.Height)
	}
	if math.Abs(a.Big.Height-b.Big.Height) > 1e-12 {
		t.Errorf("cross-section changed big height: %f vs %f", a.Big.Height, b.Big.Height)
	}
}

// Serialization lives in the config package; the model types must stay
// codec-free.
func TestModelTypesAreCodecFree(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Model{}),
		reflect.TypeOf(Container{}),
		reflect.TypeOf(ContainerConfig{}),
		reflect.TypeOf(Config{}),
		reflect.TypeOf(Vec2{}),
	} {
		for i := 0; i < typ.NumField(); i++ {
			if tag := typ.Field(i).Tag; tag != "" {
				t.Errorf("%s.%s carries struct tag %q", typ.Name(), typ.Field(i).Name, tag)
			}
		}
	}
}

func TestZeroConfigUsesDefaultConstants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0
	cfg.Gravity = 0

	m := New(cfg)
	if m.Density != DefaultDensity || m.Gravity != DefaultGravity {
		t.Errorf("expected default constants, got density %f gravity %f", m.Density, m.Gravity)
	}
}
