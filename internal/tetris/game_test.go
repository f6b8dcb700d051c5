package tetris

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func mustGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// stepOnce advances one short tick, enough to run the spawn phase without
// triggering gravity.
func stepOnce(g *Game) {
	g.Step(time.Millisecond, core.InputFrame{})
}

func frame(actions ...core.Action) core.InputFrame {
	return core.InputFrame{Actions: actions}
}

// fillRow fills a board row, optionally leaving the given columns empty.
func fillRow(b *Board, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.cells[y][x] = PieceJ
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	// Two games with the same seed and the same scripted input must stay in
	// lockstep, snapshot for snapshot.
	g1 := mustGame(t, Config{Seed: 42})
	g2 := mustGame(t, Config{Seed: 42})

	dt := 16 * time.Millisecond
	for i := 0; i < 600; i++ {
		var in core.InputFrame
		switch {
		case i%23 == 10:
			in.Push(core.ActionHardDrop)
		case i%11 == 5:
			in.Push(core.ActionRotateCW)
		case i%7 == 3:
			in.Push(core.ActionMoveLeft)
		case i%31 == 7:
			in.Push(core.ActionHold)
		}
		g1.Step(dt, in)
		g2.Step(dt, in)

		if i%100 == 0 {
			if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
				t.Fatalf("snapshots diverged at tick %d", i)
			}
		}
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Fatal("final snapshots diverged")
	}
}

func TestSpawnPosition(t *testing.T) {
	g := mustGame(t, Config{Seed: 1})
	stepOnce(g)

	if !g.hasPiece {
		t.Fatal("no piece after the spawn step")
	}
	if g.piece.Y != 0 {
		t.Errorf("spawn Y = %d, want 0", g.piece.Y)
	}
	wantX := (10 - boxSize(g.piece.Type)) / 2
	if g.piece.X != wantX {
		t.Errorf("spawn X = %d, want %d", g.piece.X, wantX)
	}
	if g.phase != PhaseFalling {
		t.Errorf("phase = %v after spawn, want falling", g.phase)
	}
}

func TestHardDropScoresAndLocks(t *testing.T) {
	g := mustGame(t, Config{Seed: 2})
	stepOnce(g)
	g.piece = Piece{Type: PieceI, X: 3, Y: 0}

	g.Step(0, frame(core.ActionHardDrop))

	// A flat I drops 20 rows to the floor at 2 points per cell
	if g.scorer.Score() != 40 {
		t.Errorf("score = %d, want 40", g.scorer.Score())
	}
	for x := 3; x <= 6; x++ {
		if g.board.Cell(x, 21) != PieceI {
			t.Errorf("Cell(%d,21) = %v, want I", x, g.board.Cell(x, 21))
		}
	}
	// No lines cleared, so the same Step already spawned the next piece
	if !g.hasPiece {
		t.Error("next piece should spawn right after a lock without clears")
	}
}

func TestLineClearFlow(t *testing.T) {
	g := mustGame(t, Config{Seed: 3})
	stepOnce(g)

	fillRow(g.board, 21, 3, 4, 5, 6)
	g.piece = Piece{Type: PieceI, X: 3, Y: 0}

	g.Step(0, frame(core.ActionHardDrop))

	if g.phase != PhaseLineClearing {
		t.Fatalf("phase = %v, want line_clearing", g.phase)
	}
	if g.scorer.Lines() != 1 {
		t.Errorf("lines = %d, want 1", g.scorer.Lines())
	}
	// 40 drop points plus a single at level 1
	if g.scorer.Score() != 140 {
		t.Errorf("score = %d, want 140", g.scorer.Score())
	}
	if g.lastEvent.Label() != "Single" {
		t.Errorf("event label = %q", g.lastEvent.Label())
	}

	// The clear delay holds the phase, then spawning resumes
	g.Step(g.cfg.LineClearDelay/2, core.InputFrame{})
	if g.phase != PhaseLineClearing {
		t.Fatal("clear delay ended early")
	}
	g.Step(g.cfg.LineClearDelay, core.InputFrame{})
	if g.phase != PhaseSpawning && g.phase != PhaseFalling {
		t.Fatalf("phase = %v after the clear delay", g.phase)
	}
	// The filled row is gone
	for x := 0; x < 10; x++ {
		if g.board.Cell(x, 21) != PieceNone {
			t.Errorf("Cell(%d,21) = %v after clear, want empty", x, g.board.Cell(x, 21))
		}
	}
}

func TestLockDelayResetCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 4
	cfg.MaxLockResets = 2
	g := mustGame(t, cfg)
	stepOnce(g)
	g.piece = Piece{Type: PieceO, X: 4, Y: 20} // resting on the floor

	g.Step(400*time.Millisecond, core.InputFrame{})
	if g.phase != PhaseLockDelay {
		t.Fatalf("phase = %v, want lock_delay", g.phase)
	}

	// Two qualifying moves reset the timer
	g.Step(0, frame(core.ActionMoveLeft))
	g.Step(400*time.Millisecond, core.InputFrame{})
	g.Step(0, frame(core.ActionMoveRight))
	g.Step(400*time.Millisecond, core.InputFrame{})
	if g.phase != PhaseLockDelay {
		t.Fatal("piece locked despite timer resets")
	}

	// The cap is spent: this move no longer resets the timer
	g.Step(0, frame(core.ActionMoveLeft))
	g.Step(100*time.Millisecond, core.InputFrame{})

	if g.board.Cell(3, 21) != PieceO {
		t.Errorf("piece not locked at the expected position, Cell(3,21) = %v", g.board.Cell(3, 21))
	}
}

func TestLockDelayClearedByFallingOff(t *testing.T) {
	// Sliding off a ledge mid lock-delay returns the piece to free fall and
	// refills the reset budget.
	g := mustGame(t, Config{Seed: 5})
	stepOnce(g)

	// A one-cell ledge under the O piece's left column
	g.board.cells[20][4] = PieceJ
	g.piece = Piece{Type: PieceO, X: 4, Y: 18}
	g.restResets = 3

	g.Step(100*time.Millisecond, core.InputFrame{})
	if g.phase != PhaseLockDelay {
		t.Fatalf("phase = %v, want lock_delay on the ledge", g.phase)
	}

	g.Step(0, frame(core.ActionMoveRight))
	if g.phase != PhaseFalling {
		t.Fatalf("phase = %v after sliding off, want falling", g.phase)
	}
	if g.restResets != 0 {
		t.Errorf("reset budget = %d after falling off, want 0", g.restResets)
	}
}

func TestPauseFreezesAndDropsActions(t *testing.T) {
	g := mustGame(t, Config{Seed: 6})
	stepOnce(g)
	x, y := g.piece.X, g.piece.Y

	g.Step(0, frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}

	// Actions are dropped while paused, not buffered
	g.Step(0, frame(core.ActionMoveLeft))
	g.Step(10*time.Second, core.InputFrame{})
	if g.piece.X != x || g.piece.Y != y {
		t.Error("piece moved while paused")
	}

	g.Step(0, frame(core.ActionPause))
	g.Step(0, frame(core.ActionMoveLeft))
	if g.piece.X != x-1 {
		t.Error("movement broken after unpause")
	}
}

func TestTopOutOnBlockedSpawn(t *testing.T) {
	g := mustGame(t, Config{Seed: 7})
	for y := 0; y < 5; y++ {
		fillRow(g.board, y, 0) // leave a hole so nothing clears
	}

	stepOnce(g)
	if g.phase != PhaseGameOver {
		t.Fatalf("phase = %v with a blocked spawn, want game_over", g.phase)
	}
	if g.hasPiece {
		t.Error("no piece should be active after a blocked spawn")
	}
	if !g.State().GameOver {
		t.Error("GameOver flag not set")
	}

	// Gameplay actions are ignored, restart works
	g.Step(0, frame(core.ActionMoveLeft, core.ActionHardDrop))
	g.Step(0, frame(core.ActionRestart))
	if g.State().GameOver {
		t.Fatal("restart did not leave game over")
	}
	if g.scorer.Score() != 0 || g.board.Cell(1, 0) != PieceNone {
		t.Error("restart did not reset the run")
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	g := mustGame(t, Config{Seed: 8})
	stepOnce(g)
	g.scorer.score = 50

	g.Step(0, frame(core.ActionRestart))
	if g.scorer.Score() != 50 || !g.hasPiece {
		t.Error("restart must only work from game over")
	}
}

func TestLockOutInBuffer(t *testing.T) {
	// A piece that locks entirely inside the hidden rows tops the game out.
	g := mustGame(t, Config{Seed: 9})
	stepOnce(g)

	fillRow(g.board, 2, 9) // support just below the buffer, with a hole
	g.piece = Piece{Type: PieceT, X: 3, Y: 0}

	g.Step(600*time.Millisecond, core.InputFrame{})
	if g.phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game_over on lock out", g.phase)
	}
	if g.Won() {
		t.Error("lock out is a loss, not a win")
	}
}

func TestHoldOncePerPiece(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 10
	g := mustGame(t, cfg)
	stepOnce(g)

	first := g.piece.Type
	next := g.bag.Peek(1)[0]

	g.Step(0, frame(core.ActionHold))
	if g.hold != first {
		t.Fatalf("hold slot = %v, want %v", g.hold, first)
	}
	if g.piece.Type != next {
		t.Fatalf("active piece = %v after first hold, want %v", g.piece.Type, next)
	}

	// Second hold on the same piece is ignored
	g.Step(0, frame(core.ActionHold))
	if g.hold != first || g.piece.Type != next {
		t.Fatal("hold must be usable once per piece")
	}

	// Locking re-arms hold; swapping now returns the held piece
	g.Step(0, frame(core.ActionHardDrop))
	spawned := g.piece.Type
	g.Step(0, frame(core.ActionHold))
	if g.piece.Type != first {
		t.Errorf("piece after swap = %v, want the held %v", g.piece.Type, first)
	}
	if g.hold != spawned {
		t.Errorf("hold slot = %v, want %v", g.hold, spawned)
	}
}

func TestHoldDisabled(t *testing.T) {
	g := mustGame(t, Config{Seed: 11}) // zero-value EnableHold is off
	stepOnce(g)
	first := g.piece.Type

	g.Step(0, frame(core.ActionHold))
	if g.hold != PieceNone || g.piece.Type != first {
		t.Error("hold must be inert when disabled")
	}
}

func TestSoftDropSpeedAndPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12
	cfg.GravityTable = map[int]time.Duration{1: 100 * time.Millisecond}
	cfg.SoftDropFactor = 10
	g := mustGame(t, cfg)
	stepOnce(g)
	y0 := g.piece.Y

	g.Step(0, frame(core.ActionSoftDropStart))
	g.Step(50*time.Millisecond, core.InputFrame{}) // 5 intervals at 10ms

	if g.piece.Y != y0+5 {
		t.Errorf("piece Y = %d, want %d", g.piece.Y, y0+5)
	}
	if g.scorer.Score() != 5 {
		t.Errorf("score = %d, want 5 soft drop points", g.scorer.Score())
	}

	// Releasing returns to the plain gravity interval, no points
	g.Step(0, frame(core.ActionSoftDropEnd))
	g.Step(100*time.Millisecond, core.InputFrame{})
	if g.piece.Y != y0+6 {
		t.Errorf("piece Y = %d after release, want %d", g.piece.Y, y0+6)
	}
	if g.scorer.Score() != 5 {
		t.Errorf("score = %d, gravity descent must not score", g.scorer.Score())
	}
}

func TestGravityDescent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 13
	cfg.GravityTable = map[int]time.Duration{1: 50 * time.Millisecond}
	g := mustGame(t, cfg)
	stepOnce(g)
	y0 := g.piece.Y

	g.Step(120*time.Millisecond, core.InputFrame{})
	if g.piece.Y != y0+2 {
		t.Errorf("piece Y = %d after 120ms at 50ms gravity, want %d", g.piece.Y, y0+2)
	}
}

func TestMarathonWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 14
	cfg.MaxLevel = 1
	g := mustGame(t, cfg)
	stepOnce(g)

	g.scorer.levelLines = 4 // one line short of level 2
	fillRow(g.board, 21, 3, 4, 5, 6)
	g.piece = Piece{Type: PieceI, X: 3, Y: 0}

	g.Step(0, frame(core.ActionHardDrop))

	if !g.Won() {
		t.Fatal("reaching max level should win")
	}
	if g.phase != PhaseGameOver {
		t.Errorf("phase = %v, want game_over", g.phase)
	}
	if !g.Snapshot().Won {
		t.Error("snapshot Won flag not set")
	}
}

func TestActionsResolveInOrder(t *testing.T) {
	// Rotate and hard drop in the same frame lock the rotated footprint.
	g := mustGame(t, Config{Seed: 15})
	stepOnce(g)
	g.piece = Piece{Type: PieceT, X: 3, Y: 0}

	g.Step(0, frame(core.ActionRotateCW, core.ActionHardDrop))

	// T rotation 1 footprint at the floor: column of three plus a right nub
	for _, c := range []Cell{{4, 19}, {4, 20}, {5, 20}, {4, 21}} {
		if g.board.Cell(c.X, c.Y) != PieceT {
			t.Errorf("Cell(%d,%d) = %v, want T", c.X, c.Y, g.board.Cell(c.X, c.Y))
		}
	}
	if g.board.Cell(3, 21) == PieceT {
		t.Error("footprint matches the unrotated piece")
	}
}

func TestMovementCancelsSpinQualification(t *testing.T) {
	g := mustGame(t, Config{Seed: 16})
	stepOnce(g)
	g.piece = Piece{Type: PieceT, X: 3, Y: 5}

	g.Step(0, frame(core.ActionRotateCW))
	if !g.lastRotation {
		t.Fatal("rotation did not set the spin qualifier")
	}
	g.Step(0, frame(core.ActionMoveLeft))
	if g.lastRotation {
		t.Error("lateral movement must cancel the spin qualifier")
	}
}

func TestSnapshotContents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 17
	g := mustGame(t, cfg)
	stepOnce(g)

	snap := g.Snapshot()
	if snap.Phase != "falling" {
		t.Errorf("phase = %q, want falling", snap.Phase)
	}
	if len(snap.Board) != 20 || len(snap.Board[0]) != 10 {
		t.Errorf("board %dx%d, want 20x10", len(snap.Board), len(snap.Board[0]))
	}
	if len(snap.Next) != 3 {
		t.Errorf("preview length = %d, want 3", len(snap.Next))
	}
	if !snap.HasPiece || len(snap.PieceCells) != 4 {
		t.Error("active piece missing from snapshot")
	}
	if len(snap.GhostCells) != 4 {
		t.Fatal("ghost missing from snapshot")
	}
	// On an empty board the ghost rests on the floor
	floor := false
	for _, c := range snap.GhostCells {
		if c.Y == 21 {
			floor = true
		}
	}
	if !floor {
		t.Error("ghost does not touch the floor of an empty board")
	}
}

func TestResetLoadsDefaults(t *testing.T) {
	SetConfigPath("")
	SetStartLevel(5)
	defer SetStartLevel(0)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})

	if g.State().GameOver {
		t.Fatal("fresh game reports game over")
	}
	if g.scorer.Level() != 5 {
		t.Errorf("level = %d, want the selected start level 5", g.scorer.Level())
	}
	// The selection is consumed by the reset
	if GetStartLevel() != 0 {
		t.Error("start level selection should be one-shot")
	}

	stepOnce(g)
	if !g.hasPiece {
		t.Error("game did not spawn after reset")
	}
}

func TestEndlessHasNoMaxLevel(t *testing.T) {
	SetConfigPath("")
	g := NewEndless()
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.cfg.MaxLevel != 0 {
		t.Errorf("endless MaxLevel = %d, want 0", g.cfg.MaxLevel)
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	if _, err := NewGame(Config{BoardWidth: 2}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"marathon", "endless"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil || g == nil {
			t.Errorf("Create(%q): %v", id, err)
		}
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	if New().ID() != "marathon" || NewEndless().ID() != "endless" {
		t.Error("mode IDs wrong")
	}
	if !strings.Contains(New().Title(), "Tetris") || !strings.Contains(NewEndless().Title(), "Endless") {
		t.Error("titles wrong")
	}
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 18
	g := mustGame(t, cfg)
	stepOnce(g)

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()

	for _, want := range []string{"Score", "Next", "Hold"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered frame missing %q", want)
		}
	}

	// Game over overlay
	g.phase = PhaseGameOver
	g.Render(s)
	if !strings.Contains(s.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
}
