package game

import (
	"errors"
	"fmt"
)

// Play-field defaults (in pixels). 40×40 cells at the default cell size.
const (
	DefaultPlayWidth  = 800
	DefaultPlayHeight = 800
	DefaultCellSize   = 20
)

// Snake defaults.
const (
	DefaultSnakeLength = 3
	DefaultSnakeSpeed  = 20.0 // px/s, one cell per second at the default cell size
)

// Fruit spawn defaults.
const (
	DefaultSpawnInterval = 5.0 // seconds between spawn cycles
	DefaultSpawnAttempts = 100 // placement draws per cycle before giving up
)

// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config carries every tunable of the simulation core.
// Values are validated, never clamped: a bad value fails NewRound.
type Config struct {
	PlayWidth  int // play-field width in pixels
	PlayHeight int // play-field height in pixels
	CellSize   int // grid cell side in pixels

	SnakeLength int     // initial segment count
	SnakeSpeed  float64 // pixels per second

	SpawnInterval float64 // seconds between fruit spawn cycles
	SpawnAttempts int     // placement draws per cycle before skipping

	Seed uint64 // RNG seed; 0 derives one from the clock
}

func DefaultConfig() Config {
	return Config{
		PlayWidth:     DefaultPlayWidth,
		PlayHeight:    DefaultPlayHeight,
		CellSize:      DefaultCellSize,
		SnakeLength:   DefaultSnakeLength,
		SnakeSpeed:    DefaultSnakeSpeed,
		SpawnInterval: DefaultSpawnInterval,
		SpawnAttempts: DefaultSpawnAttempts,
	}
}

// Validate rejects configurations the simulation cannot run on.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d, want > 0", ErrInvalidConfig, c.CellSize)
	}
	if c.SnakeLength < 1 {
		return fmt.Errorf("%w: snake length %d, want >= 1", ErrInvalidConfig, c.SnakeLength)
	}
	if c.PlayWidth < c.CellSize {
		return fmt.Errorf("%w: play width %d cannot hold a single %d px cell", ErrInvalidConfig, c.PlayWidth, c.CellSize)
	}
	if min := (c.SnakeLength + 1) * c.CellSize; c.PlayHeight < min {
		return fmt.Errorf("%w: play height %d cannot hold a length-%d snake, want >= %d", ErrInvalidConfig, c.PlayHeight, c.SnakeLength, min)
	}
	if c.SnakeSpeed <= 0 {
		return fmt.Errorf("%w: snake speed %g, want > 0", ErrInvalidConfig, c.SnakeSpeed)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn interval %g, want > 0", ErrInvalidConfig, c.SpawnInterval)
	}
	if c.SpawnAttempts < 1 {
		return fmt.Errorf("%w: spawn attempts %d, want >= 1", ErrInvalidConfig, c.SpawnAttempts)
	}
	return nil
}

// MaxCol returns the rightmost column whose cell box still fits the field.
func (c Config) MaxCol() int {
	return cellOf(c.PlayWidth-c.CellSize, c.CellSize)
}

// MaxRow returns the bottom row whose cell box still fits the field.
func (c Config) MaxRow() int {
	return cellOf(c.PlayHeight-c.CellSize, c.CellSize)
}
