package config

var Presets = map[string]*Config{
	"balanced": {
		Big:   ContainerConfig{Height: 0.5, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small: ContainerConfig{Height: 0.5, Width: 0.25, Left: 0.5, Bottom: -0.5},
	},
	"piston": {
		ExternalPressure: 0.5,
		Big:              ContainerConfig{Height: 0.5, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small:            ContainerConfig{Height: 0.5, Width: 0.25, Left: 0.5, Bottom: -0.5},
	},
	"vacuum": {
		ExternalPressure: -0.5,
		Big:              ContainerConfig{Height: 0.5, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small:            ContainerConfig{Height: 0.5, Width: 0.25, Left: 0.5, Bottom: -0.5},
	},
	"lopsided": {
		Big:   ContainerConfig{Height: 0.9, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small: ContainerConfig{Height: 0.1, Width: 0.25, Left: 0.5, Bottom: -0.5},
	},
	// Big side held almost empty by the piston; 8.82 balances the
	// 0.9 height gap at gravity 9.8.
	"drained": {
		ExternalPressure: 8.82,
		Big:              ContainerConfig{Height: 0.05, Width: 0.5, Left: -0.75, Bottom: -0.5},
		Small:            ContainerConfig{Height: 0.95, Width: 0.25, Left: 0.5, Bottom: -0.5},
	},
	"capillary": {
		Big:   ContainerConfig{Height: 0.5, Width: 0.7, Left: -0.85, Bottom: -0.5},
		Small: ContainerConfig{Height: 0.5, Width: 0.05, Left: 0.6, Bottom: -0.5},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Big = p.Big
	cfg.Small = p.Small
	cfg.ExternalPressure = p.ExternalPressure
	if p.Density != 0 {
		cfg.Density = p.Density
	}
	if p.Gravity != 0 {
		cfg.Gravity = p.Gravity
	}
	if p.Ticks != 0 {
		cfg.Ticks = p.Ticks
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
