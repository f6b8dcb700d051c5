package tetris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig marks configuration validation failures. It is the only
// error surface the simulation has: gameplay rejections (blocked moves,
// failed rotations) are silent, not errors.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// Config holds the simulation parameters. The zero value of a field means
// "absent" and is replaced by the guideline default; an explicitly invalid
// value (negative delay, too-narrow board) is rejected by Validate rather
// than silently corrected.
type Config struct {
	BoardWidth  int // default 10
	BoardHeight int // visible rows, default 20
	BufferRows  int // hidden spawn rows above the field, default 2

	// Seed feeds the bag randomizer; 0 picks a time-based seed at start.
	Seed int64

	StartingLevel int // default 1
	MaxLevel      int // reaching it ends the game as a win; 0 = endless

	LockDelay      time.Duration // default 500ms
	MaxLockResets  int           // default 15; -1 means zero resets
	LineClearDelay time.Duration // default 400ms
	SoftDropFactor int           // gravity speedup while soft-dropping, default 20

	PreviewCount int  // next-queue length in snapshots, default 3
	EnableHold   bool // default on (see DefaultConfig)
	EnableGhost  bool // default on

	// GravityTable overrides the fall interval for specific levels; levels
	// not present use the guideline curve.
	GravityTable map[int]time.Duration

	// SpinPolicy classifies rotation bonuses; nil selects TSpinPolicy.
	SpinPolicy SpinPolicy
}

// DefaultConfig returns the guideline-standard configuration for marathon
// play.
func DefaultConfig() Config {
	return Config{
		BoardWidth:     10,
		BoardHeight:    20,
		BufferRows:     2,
		StartingLevel:  1,
		MaxLevel:       15,
		LockDelay:      500 * time.Millisecond,
		MaxLockResets:  15,
		LineClearDelay: 400 * time.Millisecond,
		SoftDropFactor: 20,
		PreviewCount:   3,
		EnableHold:     true,
		EnableGhost:    true,
		SpinPolicy:     TSpinPolicy,
	}
}

// withDefaults fills absent (zero) fields with guideline defaults without
// touching explicitly set values.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BoardWidth == 0 {
		c.BoardWidth = def.BoardWidth
	}
	if c.BoardHeight == 0 {
		c.BoardHeight = def.BoardHeight
	}
	if c.BufferRows == 0 {
		c.BufferRows = def.BufferRows
	}
	if c.StartingLevel == 0 {
		c.StartingLevel = def.StartingLevel
	}
	if c.LockDelay == 0 {
		c.LockDelay = def.LockDelay
	}
	if c.MaxLockResets == 0 {
		c.MaxLockResets = def.MaxLockResets
	}
	if c.MaxLockResets < 0 {
		c.MaxLockResets = 0
	}
	if c.LineClearDelay == 0 {
		c.LineClearDelay = def.LineClearDelay
	}
	if c.SoftDropFactor == 0 {
		c.SoftDropFactor = def.SoftDropFactor
	}
	if c.PreviewCount == 0 {
		c.PreviewCount = def.PreviewCount
	}
	if c.SpinPolicy == nil {
		c.SpinPolicy = def.SpinPolicy
	}
	return c
}

// Validate rejects configurations the simulation cannot run with. It is
// called on the caller's explicit values, before defaults are applied, so an
// invalid explicit value is never silently replaced.
func (c Config) Validate() error {
	if c.BoardWidth != 0 && c.BoardWidth < 4 {
		return fmt.Errorf("%w: board width %d, need at least 4", ErrInvalidConfig, c.BoardWidth)
	}
	if c.BoardHeight != 0 && c.BoardHeight < 4 {
		return fmt.Errorf("%w: board height %d, need at least 4", ErrInvalidConfig, c.BoardHeight)
	}
	if c.BufferRows < 0 {
		return fmt.Errorf("%w: negative buffer rows %d", ErrInvalidConfig, c.BufferRows)
	}
	if c.StartingLevel < 0 {
		return fmt.Errorf("%w: negative starting level %d", ErrInvalidConfig, c.StartingLevel)
	}
	if c.MaxLevel < 0 {
		return fmt.Errorf("%w: negative max level %d", ErrInvalidConfig, c.MaxLevel)
	}
	if c.LockDelay < 0 {
		return fmt.Errorf("%w: negative lock delay %v", ErrInvalidConfig, c.LockDelay)
	}
	if c.LineClearDelay < 0 {
		return fmt.Errorf("%w: negative line clear delay %v", ErrInvalidConfig, c.LineClearDelay)
	}
	if c.SoftDropFactor < 0 {
		return fmt.Errorf("%w: negative soft drop factor %d", ErrInvalidConfig, c.SoftDropFactor)
	}
	if c.PreviewCount < 0 {
		return fmt.Errorf("%w: negative preview count %d", ErrInvalidConfig, c.PreviewCount)
	}
	for level, interval := range c.GravityTable {
		if level < 1 {
			return fmt.Errorf("%w: gravity table level %d", ErrInvalidConfig, level)
		}
		if interval <= 0 {
			return fmt.Errorf("%w: gravity interval %v for level %d", ErrInvalidConfig, interval, level)
		}
	}
	return nil
}

// gravityInterval returns the time a piece rests on each row before falling
// one row at the given level: the guideline curve
// (0.8 - (level-1)*0.007)^(level-1) seconds, clamped to a 1ms floor, unless
// the config table overrides the level.
func (c Config) gravityInterval(level int) time.Duration {
	if iv, ok := c.GravityTable[level]; ok {
		return iv
	}
	if level < 1 {
		level = 1
	}
	// Past level 19 the curve collapses below the clamp anyway.
	if level > 19 {
		level = 19
	}
	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
	iv := time.Duration(seconds * float64(time.Second))
	if iv < time.Millisecond {
		iv = time.Millisecond
	}
	return iv
}
