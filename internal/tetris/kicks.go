package tetris

// Offset is a kick candidate: a translation applied to a rotated piece
// before testing it against the board.
type Offset struct {
	DX, DY int
}

// transition indexes a kick table by source and target rotation state.
type transition struct {
	from, to int
}

// SRS wall-kick tables, stored in grid coordinates (Y grows downward, so the
// published guideline offsets have their Y components negated). The first
// candidate of every transition is the identity offset; candidates are tested
// in order and the first that fits is applied.
//
// J, L, S, T and Z share one table; I has its own; O has no kicks at all.
var jlstzKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var identityKick = []Offset{{0, 0}}

// kickOffsets returns the ordered kick candidates for rotating the given
// piece type from one rotation state to another.
func kickOffsets(t PieceType, from, to int) []Offset {
	key := transition{from: ((from % 4) + 4) % 4, to: ((to % 4) + 4) % 4}
	switch t {
	case PieceO:
		return identityKick
	case PieceI:
		if offs, ok := iKicks[key]; ok {
			return offs
		}
	default:
		if offs, ok := jlstzKicks[key]; ok {
			return offs
		}
	}
	return identityKick
}
