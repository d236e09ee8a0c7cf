// Package config assembles the launchgrid settings from a YAML file and LAUNCHGRID_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/engine"
	"github.com/lixenwraith/launchgrid/snake"
	"github.com/lixenwraith/launchgrid/terminal"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration
type Config struct {
	Loop     engine.LoopConfig `yaml:"loop"`
	Snake    snake.Config      `yaml:"snake"`
	Audio    audio.AudioConfig `yaml:"audio"`
	Terminal terminal.Config   `yaml:"terminal"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Loop:     engine.DefaultLoopConfig(),
		Snake:    snake.DefaultConfig(),
		Audio:    *audio.DefaultAudioConfig(),
		Terminal: terminal.DefaultConfig(),
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides c from LAUNCHGRID_* environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	c.Audio.ApplyEnv()

	if speed := os.Getenv("LAUNCHGRID_SNAKE_SPEED"); speed != "" {
		if val, err := strconv.ParseFloat(speed, 64); err == nil {
			c.Snake.Speed = val
		}
	}

	if seed := os.Getenv("LAUNCHGRID_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Snake.Seed = val
		}
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if c.Loop.FixedPeriod <= 0 {
		return fmt.Errorf("loop fixed period %v must be positive: %w", c.Loop.FixedPeriod, ErrInvalidConfig)
	}
	if c.Loop.FrameInterval < 0 {
		return fmt.Errorf("loop frame interval %v is negative: %w", c.Loop.FrameInterval, ErrInvalidConfig)
	}
	if err := c.Snake.Validate(); err != nil {
		return fmt.Errorf("snake: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio: %w: %w", ErrInvalidConfig, err)
	}
	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		return fmt.Errorf("terminal cell %dx%d must be at least 1x1: %w",
			c.Terminal.CellWidth, c.Terminal.CellHeight, ErrInvalidConfig)
	}
	return nil
}
