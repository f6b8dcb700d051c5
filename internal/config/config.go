// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris platform.
package config

// TetrisConfig contains all tunable parameters of the simulation and the
// terminal input layer. Field semantics mirror the engine Config; values
// here are plain ints (milliseconds for durations) so the YAML stays
// editor-friendly.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Timing  TimingConfig  `yaml:"timing"`
	Rules   RulesConfig   `yaml:"rules"`
	Input   InputConfig   `yaml:"input"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`      // visible rows
	BufferRows int `yaml:"buffer_rows"` // hidden spawn rows above the field
}

// GravityConfig overrides the standard fall-speed curve.
type GravityConfig struct {
	// TableMS maps a level to its fall interval in milliseconds. Levels not
	// listed use the built-in curve.
	TableMS map[int]int `yaml:"table_ms"`
}

// TimingConfig defines the lock and line-clear timers.
type TimingConfig struct {
	LockDelayMS      int `yaml:"lock_delay_ms"`
	MaxLockResets    int `yaml:"max_lock_resets"` // -1 disables resets entirely
	LineClearDelayMS int `yaml:"line_clear_delay_ms"`
	SoftDropFactor   int `yaml:"soft_drop_factor"`
}

// RulesConfig defines gameplay rule toggles.
type RulesConfig struct {
	StartingLevel int    `yaml:"starting_level"`
	MaxLevel      int    `yaml:"max_level"` // 0 = endless
	PreviewCount  int    `yaml:"preview_count"`
	EnableHold    bool   `yaml:"enable_hold"`
	EnableGhost   bool   `yaml:"enable_ghost"`
	SpinPolicy    string `yaml:"spin_policy"` // tspin, immobile, off
}

// InputConfig defines terminal key-repeat pacing. This is consumed by the
// platform layer, not the simulation: terminals deliver auto-repeated
// keypresses, and these values throttle them into delayed-auto-shift.
type InputConfig struct {
	DASDelayMS  int `yaml:"das_delay_ms"`  // delay before repeat kicks in
	DASRepeatMS int `yaml:"das_repeat_ms"` // interval between repeats
}
