package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Mode  string
	Phase string

	Score       int
	Level       int
	Lines       int
	LinesToNext int
	Combo       int
	BackToBack  bool

	// Board lists the visible rows top to bottom, buffer rows excluded.
	Board [][]PieceType

	// Active piece, absent in the spawning/clearing/game-over phases.
	HasPiece  bool
	PieceKind PieceType
	PieceX    int
	PieceY    int
	Rotation  int
	// PieceCells are the active piece's absolute occupied cells.
	PieceCells []Cell

	// GhostCells are where the piece would land on a hard drop; empty when
	// the ghost is disabled or no piece is active.
	GhostCells []Cell

	Hold     PieceType
	HoldUsed bool
	Next     []PieceType

	LastEvent ClearEvent
	Paused    bool
	Won       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Phase:       g.phase.String(),
		Score:       g.scorer.Score(),
		Level:       g.scorer.Level(),
		Lines:       g.scorer.Lines(),
		LinesToNext: g.scorer.LinesToNext(),
		Combo:       g.scorer.Combo(),
		BackToBack:  g.scorer.BackToBackPrimed(),
		Hold:        g.hold,
		HoldUsed:    g.holdUsed,
		Next:        g.bag.Peek(g.cfg.PreviewCount),
		LastEvent:   g.lastEvent,
		Paused:      g.paused,
		Won:         g.won,
	}

	s.Board = make([][]PieceType, g.board.VisibleHeight())
	for y := range s.Board {
		row := make([]PieceType, g.board.Width())
		for x := range row {
			row[x] = g.board.Cell(x, y+g.board.BufferRows())
		}
		s.Board[y] = row
	}

	if g.hasPiece {
		s.HasPiece = true
		s.PieceKind = g.piece.Type
		s.PieceX = g.piece.X
		s.PieceY = g.piece.Y
		s.Rotation = g.piece.Rotation
		s.PieceCells = g.piece.Cells()
		if g.cfg.EnableGhost {
			s.GhostCells = g.ghostCells()
		}
	}

	return s
}

// ghostCells returns the cells the active piece would occupy after a hard
// drop from its current position.
func (g *Game) ghostCells() []Cell {
	y := g.piece.Y
	for g.board.CanPlace(g.piece.CellsAt(g.piece.X, y+1, g.piece.Rotation)) {
		y++
	}
	return g.piece.CellsAt(g.piece.X, y, g.piece.Rotation)
}
