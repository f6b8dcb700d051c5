package tetris

import "fmt"

// SpinKind classifies the rotation bonus awarded on a lock.
type SpinKind int

const (
	SpinNone SpinKind = iota
	SpinMini
	SpinFull
)

// String returns a short label for the spin kind.
func (k SpinKind) String() string {
	switch k {
	case SpinMini:
		return "mini"
	case SpinFull:
		return "full"
	default:
		return "none"
	}
}

// SpinContext carries everything a spin predicate may inspect at lock time.
// The board already contains the locked piece cells; the corner probes look
// outside the piece, so that makes no difference to the tests.
type SpinContext struct {
	Board *Board
	Piece Piece
	// LastRotation is true when the final successful action before the lock
	// was a rotation (gravity descents and shifts clear it).
	LastRotation bool
	// KickIndex is the index of the kick candidate that made the final
	// rotation succeed; 0 means the identity offset.
	KickIndex int
}

// SpinPolicy decides whether a lock qualifies for a spin bonus. Guideline
// revisions disagree on the exact corner predicate, so the policy is
// swappable rather than hard-coded; DefaultSpinPolicy is the common
// three-corner T-spin rule.
type SpinPolicy func(SpinContext) SpinKind

// tFrontCorners gives, per rotation state, which two of the four diagonal
// corners of the T piece's 3x3 box face the side the stem points away from.
// Corners are listed in box coordinates.
var tFrontCorners = [4][2]Cell{
	{{0, 0}, {2, 0}}, // pointing up
	{{2, 0}, {2, 2}}, // pointing right
	{{0, 2}, {2, 2}}, // pointing down
	{{0, 0}, {0, 2}}, // pointing left
}

var tAllCorners = [4]Cell{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

// TSpinPolicy implements the standard three-corner rule: a T piece whose
// final action was a rotation spins when at least three of the four corners
// of its box are occupied. It is a full spin when both front corners are
// occupied, or when the rotation needed the long (±1, ∓2) kick; otherwise
// it is a mini.
func TSpinPolicy(ctx SpinContext) SpinKind {
	if ctx.Piece.Type != PieceT || !ctx.LastRotation {
		return SpinNone
	}

	occupied := 0
	for _, c := range tAllCorners {
		if ctx.Board.IsOccupied(ctx.Piece.X+c.X, ctx.Piece.Y+c.Y) {
			occupied++
		}
	}
	if occupied < 3 {
		return SpinNone
	}

	front := 0
	for _, c := range tFrontCorners[ctx.Piece.Rotation%4] {
		if ctx.Board.IsOccupied(ctx.Piece.X+c.X, ctx.Piece.Y+c.Y) {
			front++
		}
	}
	if front == 2 || ctx.KickIndex == 4 {
		return SpinFull
	}
	return SpinMini
}

// ImmobileSpinPolicy is the all-spin variant: any piece whose final action
// was a rotation and that can move neither left, right, nor up qualifies as
// a full spin. Pieces other than T rarely reach such positions without a
// kick, which keeps the bonus meaningful.
func ImmobileSpinPolicy(ctx SpinContext) SpinKind {
	if !ctx.LastRotation {
		return SpinNone
	}
	p := ctx.Piece
	for _, d := range []Offset{{-1, 0}, {1, 0}, {0, -1}} {
		if canPlaceIgnoring(ctx.Board, p, p.CellsAt(p.X+d.DX, p.Y+d.DY, p.Rotation)) {
			return SpinNone
		}
	}
	return SpinFull
}

// canPlaceIgnoring tests cells against the board while treating the piece's
// own locked cells as empty, since the policy runs after the lock.
func canPlaceIgnoring(b *Board, p Piece, cells []Cell) bool {
	own := make(map[Cell]bool, 4)
	for _, c := range p.Cells() {
		own[c] = true
	}
	for _, c := range cells {
		if own[c] {
			continue
		}
		if b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// SpinPolicyByName resolves a policy from its configuration name.
func SpinPolicyByName(name string) (SpinPolicy, error) {
	switch name {
	case "", "tspin":
		return TSpinPolicy, nil
	case "immobile":
		return ImmobileSpinPolicy, nil
	case "off":
		return func(SpinContext) SpinKind { return SpinNone }, nil
	default:
		return nil, fmt.Errorf("%w: unknown spin policy %q", ErrInvalidConfig, name)
	}
}
