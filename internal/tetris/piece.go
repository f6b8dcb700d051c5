// Package tetris implements a guideline-standard falling-block simulation:
// SRS rotation with wall kicks, 7-bag randomization, lock delay with move
// resets, line clearing, and the variable-goal scoring system. The package
// contains pure logic driven by Step; terminal display and key handling live
// in the platform layer.
package tetris

// PieceType identifies one of the seven tetromino shapes.
// The zero value marks an empty board cell.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// String returns the conventional one-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "."
	}
}

// Cell is a board coordinate. X grows rightward, Y grows downward.
type Cell struct {
	X, Y int
}

// pieceShapes holds the cell offsets of every piece in each of its four
// rotation states, relative to the piece anchor (the top-left corner of its
// bounding box). These are the guideline SRS layouts: I and O rotate inside
// a 4x4 and 2x2 box, everything else inside a 3x3 box.
var pieceShapes = map[PieceType][4][4]Cell{
	PieceI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	PieceT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	PieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// boxSize returns the width of the rotation box for the piece type.
func boxSize(t PieceType) int {
	switch t {
	case PieceI:
		return 4
	case PieceO:
		return 2
	default:
		return 3
	}
}

// Piece is the active falling piece: its type is fixed for its lifetime,
// its anchor and rotation change as it moves. Anchor coordinates are signed
// so candidate positions may be transiently out of bounds during validation.
type Piece struct {
	Type     PieceType
	X, Y     int
	Rotation int // 0..3
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() []Cell {
	return p.CellsAt(p.X, p.Y, p.Rotation)
}

// CellsAt returns the absolute cells the piece would occupy with the given
// anchor and rotation, without moving the piece.
func (p Piece) CellsAt(x, y, rotation int) []Cell {
	shape := pieceShapes[p.Type][((rotation % 4) + 4) % 4]
	cells := make([]Cell, len(shape))
	for i, c := range shape {
		cells[i] = Cell{X: x + c.X, Y: y + c.Y}
	}
	return cells
}
