package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hydrostat/internal/vessel"
)

const (
	DefaultPressureStep = 0.1
	DefaultTicks        = 120
)

// ContainerConfig mirrors vessel.ContainerConfig for the file format; the
// model package stays codec-free.
type ContainerConfig struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
}

func (c ContainerConfig) vessel() vessel.ContainerConfig {
	return vessel.ContainerConfig{Height: c.Height, Width: c.Width, Left: c.Left, Bottom: c.Bottom}
}

func containerFromVessel(c vessel.ContainerConfig) ContainerConfig {
	return ContainerConfig{Height: c.Height, Width: c.Width, Left: c.Left, Bottom: c.Bottom}
}

type Config struct {
	Density          float64         `yaml:"density"`
	Gravity          float64         `yaml:"gravity"`
	PressureStep     float64         `yaml:"pressure_step"`
	ExternalPressure float64         `yaml:"external_pressure"`
	Ticks            int             `yaml:"ticks"`
	Big              ContainerConfig `yaml:"big"`
	Small            ContainerConfig `yaml:"small"`
}

func DefaultConfig() *Config {
	v := vessel.DefaultConfig()
	return &Config{
		Density:      v.Density,
		Gravity:      v.Gravity,
		PressureStep: DefaultPressureStep,
		Ticks:        DefaultTicks,
		Big:          containerFromVessel(v.Big),
		Small:        containerFromVessel(v.Small),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Vessel maps the file-level configuration onto the model's config.
func (c *Config) Vessel() vessel.Config {
	return vessel.Config{
		Big:     c.Big.vessel(),
		Small:   c.Small.vessel(),
		Density: c.Density,
		Gravity: c.Gravity,
	}
}
