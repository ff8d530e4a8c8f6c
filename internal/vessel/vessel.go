package vessel

const (
	DefaultDensity = 1.0
	DefaultGravity = 9.8
)

type Vec2 struct {
	X, Y float64
}

// Container is one side of the apparatus: a fluid column plus the four
// corner points of the quad that renders it. The top edge is derived from
// Height every tick; the bottom edge and walls never move.
type Container struct {
	Height float64
	Width  float64

	BottomLeft  Vec2
	BottomRight Vec2
	TopLeft     Vec2
	TopRight    Vec2

	Pressure float64
}

type ContainerConfig struct {
	Height float64
	Width  float64
	Left   float64
	Bottom float64
}

type Config struct {
	Big     ContainerConfig
	Small   ContainerConfig
	Density float64
	Gravity float64
}

func DefaultConfig() Config {
	return Config{
		Big:     ContainerConfig{Height: 0.5, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small:   ContainerConfig{Height: 0.5, Width: 0.25, Left: 0.5, Bottom: -0.5},
		Density: DefaultDensity,
		Gravity: DefaultGravity,
	}
}

// Model holds both containers and the piston's external pressure. It is the
// single owner of all simulation state; presentation layers only read it.
type Model struct {
	Big   Container
	Small Container

	// ExternalPressure is an unconstrained accumulator adjusted by input
	// events. The non-negativity guard in Tick is the only safeguard.
	ExternalPressure float64

	Density float64
	Gravity float64
}

func newContainer(cfg ContainerConfig, density, gravity float64) Container {
	c := Container{
		Height:      cfg.Height,
		Width:       cfg.Width,
		BottomLeft:  Vec2{cfg.Left, cfg.Bottom},
		BottomRight: Vec2{cfg.Left + cfg.Width, cfg.Bottom},
		TopLeft:     Vec2{cfg.Left, cfg.Bottom + cfg.Height},
		TopRight:    Vec2{cfg.Left + cfg.Width, cfg.Bottom + cfg.Height},
	}
	c.Pressure = c.Height * density * gravity
	return c
}

func New(cfg Config) *Model {
	if cfg.Density == 0 {
		cfg.Density = DefaultDensity
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = DefaultGravity
	}
	return &Model{
		Big:     newContainer(cfg.Big, cfg.Density, cfg.Gravity),
		Small:   newContainer(cfg.Small, cfg.Density, cfg.Gravity),
		Density: cfg.Density,
		Gravity: cfg.Gravity,
	}
}

// ApplyPressureDelta adds delta to the external pressure. No clamping: the
// piston can be pushed or pulled arbitrarily far.
func (m *Model) ApplyPressureDelta(delta float64) {
	m.ExternalPressure += delta
}

// LeftPressure is the total pressure at the connecting point from the big
// side: the column's hydrostatic pressure plus the piston.
func (m *Model) LeftPressure() float64 {
	return m.Big.Height*m.Gravity*m.Density + m.ExternalPressure
}

// RightPressure is the hydrostatic pressure of the small column.
func (m *Model) RightPressure() float64 {
	return m.Small.Height * m.Gravity * m.Density
}

// Tick advances the equilibrium by one timestep. Both columns move by half
// the height discrepancy, standing in for the damped oscillation of a real
// coupled system. If the move would drain either side past empty, the whole
// tick is a no-op; a drained apparatus only responds to pressure changes
// that refill it.
func (m *Model) Tick() {
	m.Big.Pressure = m.Big.Height * m.Gravity * m.Density
	m.Small.Pressure = m.Small.Height * m.Gravity * m.Density

	leftPressure := m.Big.Pressure + m.ExternalPressure
	rightPressure := m.Small.Pressure

	if leftPressure == rightPressure {
		return
	}

	// Height of the small column that would balance the left side as-is.
	h := leftPressure / (m.Gravity * m.Density)

	change := (m.Small.Height - h) / 2

	if m.Big.Height+change < 0 || h+change < 0 {
		return
	}

	m.Big.Height += change
	h += change

	m.Small.TopLeft.Y = m.Small.BottomLeft.Y + h
	m.Small.TopRight.Y = m.Small.BottomRight.Y + h

	m.Big.TopLeft.Y = m.Big.BottomLeft.Y + m.Big.Height
	m.Big.TopRight.Y = m.Big.BottomRight.Y + m.Big.Height

	// Geometry is the source of truth for the small side: re-derive the
	// height from the edges that were just set.
	m.Small.Height = m.Small.TopLeft.Y - m.Small.BottomLeft.Y
}
