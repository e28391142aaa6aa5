package ebitools

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParticleConfig controls how a ParticleEngine generates particles.
// Zero-valued fields in a YAML document keep the defaults from
// DefaultParticleConfig.
type ParticleConfig struct {
	// Location is the emitter position every particle starts from.
	Location Vec2 `yaml:"location"`
	// MaximumParticles is the number of particles spawned every tick.
	MaximumParticles int `yaml:"maximumParticles"`
	// Textures are content paths; each particle picks one at random.
	Textures []string `yaml:"textures"`

	// Color is the particle tint. With RandomizeColor each channel is
	// moved by up to RandomColorThreshold in either direction.
	Color                RGB  `yaml:"color"`
	RandomizeColor       bool `yaml:"randomizeColor"`
	RandomColorThreshold int  `yaml:"randomColorThreshold"`

	// Size is the particle scale; with RandomizeSize it is drawn from
	// [Size, RandomMaximumSize].
	Size              float64 `yaml:"size"`
	RandomizeSize     bool    `yaml:"randomizeSize"`
	RandomMaximumSize float64 `yaml:"randomMaximumSize"`

	// LifeSpan is measured in ticks; with RandomizeLifeSpan up to
	// RandomMaximumLifeSpan-1 extra ticks are added.
	LifeSpan              int  `yaml:"lifeSpan"`
	RandomizeLifeSpan     bool `yaml:"randomizeLifeSpan"`
	RandomMaximumLifeSpan int  `yaml:"randomMaximumLifeSpan"`

	Angle           float64 `yaml:"angle"`
	AngularVelocity float64 `yaml:"angularVelocity"`
	// Spread bounds the per-axis velocity: each axis is Spread*U(-1, 1).
	Spread float64 `yaml:"spread"`

	BlendMode BlendMode `yaml:"blend"`
}

// DefaultParticleConfig returns the stock generation parameters.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		MaximumParticles:      1,
		Color:                 White,
		RandomColorThreshold:  255,
		Size:                  1,
		RandomMaximumSize:     1,
		LifeSpan:              60,
		RandomMaximumLifeSpan: 60,
		AngularVelocity:       0.1,
		Spread:                1,
	}
}

// Validate checks that the config describes a usable engine.
func (c *ParticleConfig) Validate() error {
	var errs []error
	if c.MaximumParticles < 0 {
		errs = append(errs, fmt.Errorf("maximumParticles must not be negative, got %d", c.MaximumParticles))
	}
	if c.RandomColorThreshold < 0 {
		errs = append(errs, fmt.Errorf("randomColorThreshold must not be negative, got %d", c.RandomColorThreshold))
	}
	if c.RandomizeSize && c.RandomMaximumSize < c.Size {
		errs = append(errs, fmt.Errorf("randomMaximumSize (%.2f) is below size (%.2f)", c.RandomMaximumSize, c.Size))
	}
	if c.RandomizeLifeSpan && c.RandomMaximumLifeSpan < 0 {
		errs = append(errs, fmt.Errorf("randomMaximumLifeSpan must not be negative, got %d", c.RandomMaximumLifeSpan))
	}
	return errors.Join(errs...)
}

// ParseParticleConfig decodes a YAML particle config over the defaults and
// validates it.
func ParseParticleConfig(data []byte) (*ParticleConfig, error) {
	cfg := DefaultParticleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ebitools: parse particle config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ebitools: invalid particle config: %w", err)
	}
	return &cfg, nil
}

// LoadParticleConfig reads and parses the YAML particle config at path.
func LoadParticleConfig(path string) (*ParticleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitools: read particle config: %w", err)
	}
	return ParseParticleConfig(data)
}

// RunConfig configures the window and frame loop started by Run.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// ClearColor fills the screen before screens draw.
	ClearColor RGB  `yaml:"clearColor"`
	ShowFPS    bool `yaml:"showFPS"`
	// HideCursor hides the OS cursor, for use with a Cursor.
	HideCursor bool `yaml:"hideCursor"`
	// ScreenshotDir is where Game.Screenshot writes PNGs.
	ScreenshotDir string `yaml:"screenshotDir"`
	// TestScript, when set, is a YAML test script run from the first tick.
	// The game exits once the script completes.
	TestScript string `yaml:"testScript"`
	Debug      bool   `yaml:"debug"`
}

// DefaultRunConfig returns an 800x600 window configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "ebitools",
		Width:         800,
		Height:        600,
		ClearColor:    RGB{100, 149, 237},
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads a YAML run config over the defaults.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitools: read run config: %w", err)
	}
	cfg := DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ebitools: parse run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("ebitools: invalid run config: window size %dx%d", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}
