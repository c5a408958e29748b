// Package deck hands out non-repeating items from a finite pool for the
// lifetime of one session. Draw order is shuffled at construction so two
// sessions over the same lesson see different sequences.
package deck

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"time"
)

// Deck is a single-session reservation over a fixed pool. Not safe for
// concurrent use; the session model is single-threaded event handling.
type Deck[T any] struct {
	items []T
	next  int
}

// New creates a deck over a copy of pool, shuffled with a crypto-seeded
// generator mixed with the wall clock.
func New[T any](pool []T) *Deck[T] {
	items := make([]T, len(pool))
	copy(items, pool)

	rng := seededRand()
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	return &Deck[T]{items: items}
}

// Draw reserves up to n unseen items. Returns fewer than n when the pool
// is nearly exhausted, and nil once it is.
func (d *Deck[T]) Draw(n int) []T {
	if n <= 0 || d.next >= len(d.items) {
		return nil
	}
	end := d.next + n
	if end > len(d.items) {
		end = len(d.items)
	}
	out := d.items[d.next:end]
	d.next = end
	return out
}

// Remaining reports how many items have not been drawn yet.
func (d *Deck[T]) Remaining() int {
	return len(d.items) - d.next
}

// Reset makes every item drawable again without reshuffling.
func (d *Deck[T]) Reset() {
	d.next = 0
}

// seededRand builds a PCG source seeded from crypto/rand with the clock
// mixed in. Repeat generations for the same lesson must not visibly cycle;
// this is a usability requirement, not a security one.
func seededRand() *mathrand.Rand {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return mathrand.New(mathrand.NewPCG(now, now>>32))
	}
	hi := binary.LittleEndian.Uint64(buf[:8]) ^ uint64(time.Now().UnixNano())
	lo := binary.LittleEndian.Uint64(buf[8:])
	return mathrand.New(mathrand.NewPCG(hi, lo))
}
