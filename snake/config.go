package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/launchgrid/constants"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid snake config")

// Config tunes gameplay
type Config struct {
	// Speed is movement in cells per second
	Speed         float64 `yaml:"speed"`
	// InitialLength is the length the snake grows to before eating
	InitialLength int     `yaml:"initial_length"`
	// FoodValue is the growth per food eaten
	FoodValue     int     `yaml:"food_value"`
	// Seed drives food placement; zero seeds from the clock
	Seed          int64   `yaml:"seed"`
}

// DefaultConfig returns the stock game
func DefaultConfig() Config {
	return Config{
		Speed:         constants.SnakeSpeed,
		InitialLength: constants.SnakeInitialLength,
		FoodValue:     constants.FoodValue,
	}
}

// MovePeriod returns the time between moves
func (c Config) MovePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.Speed)
}

// Validate checks that the game can be played with c
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("speed %v must be positive: %w", c.Speed, ErrInvalidConfig)
	}
	if c.MovePeriod() <= 0 {
		return fmt.Errorf("speed %v too high for a positive move period: %w", c.Speed, ErrInvalidConfig)
	}
	if c.InitialLength < 1 || c.InitialLength > constants.BoardWidth*constants.BoardHeight {
		return fmt.Errorf("initial length %d outside [1, %d]: %w",
			c.InitialLength, constants.BoardWidth*constants.BoardHeight, ErrInvalidConfig)
	}
	if c.FoodValue < 0 {
		return fmt.Errorf("food value %d is negative: %w", c.FoodValue, ErrInvalidConfig)
	}
	return nil
}
