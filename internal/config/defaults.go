package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the guideline-standard configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			BufferRows: 2,
		},
		Timing: TimingConfig{
			LockDelayMS:      500,
			MaxLockResets:    15,
			LineClearDelayMS: 400,
			SoftDropFactor:   20,
		},
		Rules: RulesConfig{
			StartingLevel: 1,
			MaxLevel:      15,
			PreviewCount:  3,
			EnableHold:    true,
			EnableGhost:   true,
			SpinPolicy:    "tspin",
		},
		Input: InputConfig{
			DASDelayMS:  250,
			DASRepeatMS: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, for `tetris config show`.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
