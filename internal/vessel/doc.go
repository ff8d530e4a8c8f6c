// Package vessel models communicating vessels: two containers of different
// cross-section joined by a tube at the base.
//
// Pressure at the connecting point depends only on column height,
// P = density * height * gravity, never on the container's width. The
// [Model] holds both containers plus a user-controlled external pressure
// (a piston over the big side) and advances toward equilibrium one [Model.Tick]
// at a time:
//
//	m := vessel.New(vessel.DefaultConfig())
//	m.ApplyPressureDelta(0.1) // push the piston
//	m.Tick()
//
// Each tick corrects half of the height discrepancy between the sides, a
// damped stand-in for the oscillation of a real coupled system. Heights are
// clamped to non-negative values: a tick that would drain a container past
// empty leaves all state unchanged.
//
// # Thread Safety
//
// Model is not thread-safe. The intended use is a single loop that drains
// input, ticks once, and renders.
package vessel
