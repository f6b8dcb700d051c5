package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModeEndless  Mode = "endless"
)

// Phase is the simulation's top-level state. It is a closed set: every Step
// dispatches on exactly one of these, and tests can assert the full
// transition sequence.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLockDelay
	PhaseLineClearing
	PhaseGameOver
)

// String returns the snapshot tag for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLockDelay:
		return "lock_delay"
	case PhaseLineClearing:
		return "line_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the simulation: board, active piece, bag, scorer and the phase
// machine that ties them together. It owns all of them exclusively; nothing
// else mutates them, and all timers advance only by the dt passed to Step,
// so a fixed seed plus a recorded action script replays bit-for-bit.
type Game struct {
	mode Mode
	cfg  Config
	rng  *rand.Rand

	board  *Board
	bag    *Bag
	scorer *Scorer

	piece    Piece
	hasPiece bool
	hold     PieceType
	holdUsed bool

	phase  Phase
	paused bool
	won    bool

	gravityTimer time.Duration
	softDrop     bool

	resting    bool
	restTimer  time.Duration
	restResets int

	clearTimer time.Duration

	// Spin classification inputs: whether the last successful action was a
	// rotation, and which kick candidate made it fit.
	lastRotation  bool
	lastKickIndex int

	lastEvent ClearEvent
	tick      uint64
}

// Package-level selection set by the CLI before the game is created
// (same pattern as the per-game config path in the platform commands).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the YAML config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-15). 0 keeps the config value.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a marathon game: variable goal leveling with a win at the
// configured max level.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewEndless creates an endless game: no win condition, gravity keeps
// following the curve.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewGame creates a game directly from an engine Config, for embedding and
// tests. Unlike Reset it is strict: an invalid config is an error, never
// silently replaced by defaults.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := ModeMarathon
	if cfg.MaxLevel == 0 {
		mode = ModeEndless
	}
	g := &Game{mode: mode, cfg: cfg.withDefaults()}
	if mode == ModeEndless {
		g.cfg.MaxLevel = 0
	}
	g.start(cfg.Seed)
	return g, nil
}

func init() {
	registry.Register("marathon", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tetris (Endless)"
	}
	return "Tetris (Marathon)"
}

// Reset initializes/restarts the game from the loaded file configuration.
func (g *Game) Reset(rc core.RuntimeConfig) {
	fileCfg, err := config.LoadTetris(configPath)
	if err != nil {
		fileCfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&fileCfg, config.DifficultyPreset(difficultyPreset))
	}

	cfg := FromFileConfig(fileCfg)
	if g.mode == ModeEndless {
		cfg.MaxLevel = 0
	}
	if selectedStartLevel > 0 {
		cfg.StartingLevel = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	// Reset cannot fail; a broken config file falls back to defaults. The
	// strict path for explicit configs is NewGame.
	if err := cfg.Validate(); err != nil {
		cfg = DefaultConfig()
		if g.mode == ModeEndless {
			cfg.MaxLevel = 0
		}
	}
	g.cfg = cfg.withDefaults()
	g.start(rc.Seed)
}

// FromFileConfig converts the YAML configuration into an engine Config.
// Invalid values pass through untouched so Validate can reject them.
func FromFileConfig(fc config.TetrisConfig) Config {
	cfg := Config{
		BoardWidth:     fc.Board.Width,
		BoardHeight:    fc.Board.Height,
		BufferRows:     fc.Board.BufferRows,
		StartingLevel:  fc.Rules.StartingLevel,
		MaxLevel:       fc.Rules.MaxLevel,
		LockDelay:      time.Duration(fc.Timing.LockDelayMS) * time.Millisecond,
		MaxLockResets:  fc.Timing.MaxLockResets,
		LineClearDelay: time.Duration(fc.Timing.LineClearDelayMS) * time.Millisecond,
		SoftDropFactor: fc.Timing.SoftDropFactor,
		PreviewCount:   fc.Rules.PreviewCount,
		EnableHold:     fc.Rules.EnableHold,
		EnableGhost:    fc.Rules.EnableGhost,
	}
	if policy, err := SpinPolicyByName(fc.Rules.SpinPolicy); err == nil {
		cfg.SpinPolicy = policy
	}
	if len(fc.Gravity.TableMS) > 0 {
		cfg.GravityTable = make(map[int]time.Duration, len(fc.Gravity.TableMS))
		for level, ms := range fc.Gravity.TableMS {
			cfg.GravityTable[level] = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

// start (re)initializes every run-scoped component: board, bag, scorer,
// phase and timers. Used by Reset, NewGame and the in-game restart action.
func (g *Game) start(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.board = NewBoard(g.cfg.BoardWidth, g.cfg.BoardHeight, g.cfg.BufferRows)
	g.bag = NewBag(g.rng)
	g.scorer = NewScorer(g.cfg.StartingLevel)

	g.hasPiece = false
	g.hold = PieceNone
	g.holdUsed = false
	g.phase = PhaseSpawning
	g.paused = false
	g.won = false
	g.gravityTimer = 0
	g.softDrop = false
	g.resting = false
	g.restTimer = 0
	g.restResets = 0
	g.clearTimer = 0
	g.lastRotation = false
	g.lastKickIndex = 0
	g.lastEvent = ClearEvent{}
	g.tick = 0
}

// Step advances the simulation by dt, applying the frame's actions in
// arrival order first: each action resolves against the state left by the
// previous one, so a rotate followed by a hard drop in one frame locks the
// rotated piece.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions {
		g.apply(a)
	}

	if !g.paused {
		g.advance(dt)
	}

	return core.StepResult{State: g.State()}
}

// apply dispatches one action. While paused every action other than the
// pause toggle is dropped, not buffered.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		if g.phase != PhaseGameOver {
			g.paused = !g.paused
		}
		return
	case core.ActionRestart:
		if g.phase == PhaseGameOver {
			g.start(g.rng.Int63())
		}
		return
	}

	if g.paused || g.phase == PhaseGameOver {
		return
	}
	if g.phase != PhaseFalling && g.phase != PhaseLockDelay {
		return
	}

	switch a {
	case core.ActionMoveLeft:
		if g.tryMove(-1, 0) {
			g.afterPlayerMove(false, 0)
		}
	case core.ActionMoveRight:
		if g.tryMove(1, 0) {
			g.afterPlayerMove(false, 0)
		}
	case core.ActionRotateCW:
		g.tryRotate(1)
	case core.ActionRotateCCW:
		g.tryRotate(-1)
	case core.ActionSoftDropStart:
		g.softDrop = true
	case core.ActionSoftDropEnd:
		g.softDrop = false
	case core.ActionHardDrop:
		g.hardDrop()
	case core.ActionHold:
		g.holdPiece()
	}
}

// tryMove translates the piece if the target cells are free. The piece is
// left untouched on failure; failures are normal gameplay, not errors.
func (g *Game) tryMove(dx, dy int) bool {
	if !g.hasPiece {
		return false
	}
	cells := g.piece.CellsAt(g.piece.X+dx, g.piece.Y+dy, g.piece.Rotation)
	if !g.board.CanPlace(cells) {
		return false
	}
	g.piece.X += dx
	g.piece.Y += dy
	return true
}

// tryRotate attempts the rotation through the ordered kick candidates for
// the (from, to) transition; the first candidate that fits is committed,
// anchor and rotation together.
func (g *Game) tryRotate(dir int) bool {
	if !g.hasPiece {
		return false
	}
	from := g.piece.Rotation
	to := ((from+dir)%4 + 4) % 4
	for i, off := range kickOffsets(g.piece.Type, from, to) {
		cells := g.piece.CellsAt(g.piece.X+off.DX, g.piece.Y+off.DY, to)
		if g.board.CanPlace(cells) {
			g.piece.X += off.DX
			g.piece.Y += off.DY
			g.piece.Rotation = to
			g.afterPlayerMove(true, i)
			return true
		}
	}
	return false
}

// afterPlayerMove records spin-classification state and handles lock-delay
// bookkeeping after any successful player move or rotation.
func (g *Game) afterPlayerMove(rotation bool, kickIndex int) {
	g.lastRotation = rotation
	g.lastKickIndex = kickIndex

	if !g.resting {
		return
	}
	if g.canFall() {
		// A kick lifted the piece off its surface: resting ends and the
		// reset budget refills.
		g.resting = false
		g.restResets = 0
		g.restTimer = 0
		g.phase = PhaseFalling
		return
	}
	// Qualifying move while resting: reset the timer, up to the cap.
	// Past the cap the timer just keeps running.
	if g.restResets < g.cfg.MaxLockResets {
		g.restResets++
		g.restTimer = 0
	}
}

// canFall reports whether the piece can descend one row.
func (g *Game) canFall() bool {
	if !g.hasPiece {
		return false
	}
	return g.board.CanPlace(g.piece.CellsAt(g.piece.X, g.piece.Y+1, g.piece.Rotation))
}

// hardDrop drops the piece to its floor and locks it immediately,
// regardless of the lock-delay timer or remaining resets.
func (g *Game) hardDrop() {
	dropped := 0
	for g.tryMove(0, 1) {
		dropped++
	}
	if dropped > 0 {
		// The descent is a movement, so it cancels spin qualification.
		g.lastRotation = false
	}
	g.scorer.OnHardDrop(dropped)
	g.lockPiece()
}

// holdPiece swaps the active piece with the hold slot, once per spawned
// piece. The first hold of a run pulls the replacement from the bag.
func (g *Game) holdPiece() {
	if !g.cfg.EnableHold || g.holdUsed || !g.hasPiece {
		return
	}
	held := g.hold
	g.hold = g.piece.Type
	g.holdUsed = true
	if held == PieceNone {
		held = g.bag.Next()
	}
	g.spawnType(held)
}

// advance moves the timed part of the simulation forward by dt. All timers
// live here; nothing in the engine reads a wall clock.
func (g *Game) advance(dt time.Duration) {
	switch g.phase {
	case PhaseGameOver:
		return
	case PhaseSpawning:
		g.spawn()
		return
	case PhaseLineClearing:
		g.clearTimer += dt
		if g.clearTimer >= g.cfg.LineClearDelay {
			g.phase = PhaseSpawning
		}
		return
	}

	if !g.hasPiece {
		return
	}

	if g.canFall() {
		if g.phase == PhaseLockDelay {
			g.phase = PhaseFalling
			g.resting = false
			g.restResets = 0
			g.restTimer = 0
		}
		g.applyGravity(dt)
	} else {
		g.startResting()
		g.restTimer += dt
		if g.restTimer >= g.cfg.LockDelay {
			g.lockPiece()
		}
	}
}

// applyGravity descends the piece one row per elapsed gravity interval.
// Soft drop divides the interval and pays 1 point per descended cell.
func (g *Game) applyGravity(dt time.Duration) {
	interval := g.cfg.gravityInterval(g.scorer.Level())
	if g.softDrop && g.cfg.SoftDropFactor > 1 {
		interval /= time.Duration(g.cfg.SoftDropFactor)
		if interval <= 0 {
			interval = time.Millisecond
		}
	}

	g.gravityTimer += dt
	for g.gravityTimer >= interval {
		g.gravityTimer -= interval
		if !g.tryMove(0, 1) {
			g.startResting()
			return
		}
		g.lastRotation = false
		if g.softDrop {
			g.scorer.OnSoftDrop(1)
		}
		if !g.canFall() {
			g.startResting()
			return
		}
	}
}

// startResting begins the lock-delay countdown on the transition from
// falling to resting; repeated calls while resting are no-ops.
func (g *Game) startResting() {
	if g.resting {
		return
	}
	g.resting = true
	g.restTimer = 0
	g.phase = PhaseLockDelay
	g.gravityTimer = 0
}

// spawn pulls the next piece from the bag and places it at the spawn
// anchor. A blocked spawn is the terminal top-out.
func (g *Game) spawn() {
	g.spawnType(g.bag.Next())
}

// spawnType places a new active piece of the given type at the fixed spawn
// anchor, rotation 0, centered horizontally inside the hidden buffer rows.
func (g *Game) spawnType(t PieceType) {
	g.piece = Piece{
		Type: t,
		X:    (g.board.Width() - boxSize(t)) / 2,
		Y:    0,
	}
	g.hasPiece = true
	g.lastRotation = false
	g.lastKickIndex = 0
	g.resting = false
	g.restTimer = 0
	g.restResets = 0
	g.gravityTimer = 0

	if !g.board.CanPlace(g.piece.Cells()) {
		g.hasPiece = false
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseFalling
}

// lockPiece commits the active piece to the board, classifies the lock,
// clears rows and routes to the next phase.
func (g *Game) lockPiece() {
	if !g.hasPiece {
		return
	}

	cells := g.piece.Cells()

	// Lock out: a piece resting entirely inside the hidden buffer never
	// entered the visible field, which tops the game out.
	lockOut := true
	for _, c := range cells {
		if c.Y >= g.board.BufferRows() {
			lockOut = false
			break
		}
	}

	g.board.Lock(cells, g.piece.Type)

	spin := g.cfg.SpinPolicy(SpinContext{
		Board:        g.board,
		Piece:        g.piece,
		LastRotation: g.lastRotation,
		KickIndex:    g.lastKickIndex,
	})
	lines := g.board.ClearCompletedRows()
	g.lastEvent = g.scorer.OnLock(lines, spin)

	g.hasPiece = false
	g.holdUsed = false
	g.resting = false
	g.restTimer = 0
	g.restResets = 0

	if lockOut {
		g.phase = PhaseGameOver
		return
	}
	if g.cfg.MaxLevel > 0 && g.scorer.Level() > g.cfg.MaxLevel {
		g.won = true
		g.phase = PhaseGameOver
		return
	}
	if lines > 0 {
		g.phase = PhaseLineClearing
		g.clearTimer = 0
	} else {
		g.phase = PhaseSpawning
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	var st core.GameState
	if g.scorer != nil {
		st.Score = g.scorer.Score()
		st.Level = g.scorer.Level()
		st.Lines = g.scorer.Lines()
	}
	st.GameOver = g.phase == PhaseGameOver
	st.Paused = g.paused
	return st
}

// Won reports whether the run ended by reaching the marathon goal rather
// than by topping out.
func (g *Game) Won() bool {
	return g.won
}
