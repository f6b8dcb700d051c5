package tetris

import "math/rand"

// Bag produces the piece sequence using the guideline 7-bag algorithm:
// every batch of seven draws is a fresh shuffled permutation of all seven
// types, so each type appears exactly once per bag and never more than twice
// within any window spanning two bags.
//
// The RNG is injected by the caller, which keeps the sequence deterministic
// under a fixed seed.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates a bag randomizer drawing entropy from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// refill appends one shuffled permutation of all seven types to the queue.
func (b *Bag) refill() {
	perm := b.rng.Perm(PieceCount)
	for _, i := range perm {
		b.queue = append(b.queue, PieceType(i+1))
	}
}

// Next draws the next piece type, refilling the bag when exhausted.
func (b *Bag) Next() PieceType {
	if len(b.queue) == 0 {
		b.refill()
	}
	t := b.queue[0]
	b.queue = b.queue[1:]
	return t
}

// Peek returns the next n piece types without consuming them.
func (b *Bag) Peek(n int) []PieceType {
	for len(b.queue) < n {
		b.refill()
	}
	out := make([]PieceType, n)
	copy(out, b.queue[:n])
	return out
}
