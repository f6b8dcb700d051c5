package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Normal leaves the file values untouched; fixed pins gravity to a constant
// one-second fall for every level, the classic no-progression mode.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.StartingLevel = 1
		cfg.Timing.LockDelayMS = 700
		cfg.Timing.LineClearDelayMS = 500
	case DifficultyHard:
		cfg.Rules.StartingLevel = 5
		cfg.Timing.LockDelayMS = 400
		cfg.Timing.MaxLockResets = 10
		cfg.Rules.PreviewCount = 1
	case DifficultyFixed:
		if cfg.Gravity.TableMS == nil {
			cfg.Gravity.TableMS = make(map[int]int)
		}
		for level := 1; level <= 19; level++ {
			cfg.Gravity.TableMS[level] = 1000
		}
	}
}
