package tetris

// Board is the playfield: a fixed-size grid of piece-type tags. The grid has
// visible rows plus a small buffer of hidden rows above them where pieces
// spawn; row 0 is the topmost buffer row. A cell holding PieceNone is empty.
type Board struct {
	width   int
	visible int
	buffer  int
	cells   [][]PieceType // [row][col], len = visible+buffer rows
}

// NewBoard creates an empty board with the given visible dimensions and
// hidden buffer rows on top.
func NewBoard(width, visible, buffer int) *Board {
	b := &Board{
		width:   width,
		visible: visible,
		buffer:  buffer,
	}
	b.cells = make([][]PieceType, b.TotalHeight())
	for y := range b.cells {
		b.cells[y] = make([]PieceType, width)
	}
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// VisibleHeight returns the number of visible rows.
func (b *Board) VisibleHeight() int { return b.visible }

// BufferRows returns the number of hidden rows above the visible field.
func (b *Board) BufferRows() int { return b.buffer }

// TotalHeight returns the total number of playable rows, hidden included.
func (b *Board) TotalHeight() int { return b.visible + b.buffer }

// Cell returns the tag at (x, y), or PieceNone for out-of-bounds coordinates.
func (b *Board) Cell(x, y int) PieceType {
	if x < 0 || x >= b.width || y < 0 || y >= b.TotalHeight() {
		return PieceNone
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks a piece. The side walls and the
// floor count as occupied; coordinates above the top of the grid count as
// empty so spawn validation can probe them.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width {
		return true
	}
	if y >= b.TotalHeight() {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != PieceNone
}

// CanPlace reports whether every cell is inside the horizontal and bottom
// bounds and unoccupied.
func (b *Board) CanPlace(cells []Cell) bool {
	for _, c := range cells {
		if b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock marks the cells occupied with the given piece tag. The caller
// guarantees a prior CanPlace success; no validity check is repeated here.
func (b *Board) Lock(cells []Cell, t PieceType) {
	for _, c := range cells {
		if c.Y >= 0 && c.Y < b.TotalHeight() && c.X >= 0 && c.X < b.width {
			b.cells[c.Y][c.X] = t
		}
	}
}

// ClearCompletedRows removes every row with no empty cell and shifts the rows
// above each removed row downward, returning the number of rows removed.
// Completion is evaluated against the occupancy before any removal, in a
// single pass, so a clear can never cascade within the same call.
func (b *Board) ClearCompletedRows() int {
	total := b.TotalHeight()
	kept := make([][]PieceType, 0, total)
	removed := 0

	for y := 0; y < total; y++ {
		full := true
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] == PieceNone {
				full = false
				break
			}
		}
		if full {
			removed++
		} else {
			kept = append(kept, b.cells[y])
		}
	}

	if removed == 0 {
		return 0
	}

	fresh := make([][]PieceType, 0, total)
	for i := 0; i < removed; i++ {
		fresh = append(fresh, make([]PieceType, b.width))
	}
	b.cells = append(fresh, kept...)
	return removed
}

// RowFull reports whether the given row has no empty cells.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.TotalHeight() {
		return false
	}
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == PieceNone {
			return false
		}
	}
	return true
}
