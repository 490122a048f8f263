// Package config handles clsurf tool configuration loading and saving.
package config

// Config holds all clsurf settings.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Sampler SamplerConfig `yaml:"sampler"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// SurfaceConfig holds mesh construction and refinement settings.
type SurfaceConfig struct {
	Far         float64 `yaml:"far"`          // half-width of the initial square
	MinSampling float64 `yaml:"min_sampling"` // stop refining faces whose edges are shorter
	Passes      int     `yaml:"passes"`       // uniform subdivision passes before adaptive refinement
	Adaptive    bool    `yaml:"adaptive"`     // run adaptive refinement down to min_sampling
}

// SamplerConfig selects the height sampler applied to the mesh.
type SamplerConfig struct {
	Type   string  `yaml:"type"` // "none" or "sphere"
	Radius float64 `yaml:"radius"`
}

// RenderConfig holds wireframe rendering settings.
type RenderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Far:         1.0,
			MinSampling: 0.25,
			Passes:      0,
			Adaptive:    true,
		},
		Sampler: SamplerConfig{
			Type:   "sphere",
			Radius: 0.8,
		},
		Render: RenderConfig{
			Width:  512,
			Height: 512,
			Output: "clsurface.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
