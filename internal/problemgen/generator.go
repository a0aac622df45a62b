package problemgen

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for sampling. *rand.Rand from math/rand/v2
// satisfies it; tests supply scripted sequences.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// Generator samples problems whose answers stay within Config.MaxSum.
//
// Operands are drawn from ranges that already satisfy the bounds, so there
// is no rejection loop:
//
//	add:      A in [0, max], B in [0, max-A]
//	subtract: A in [1, max], B in [0, A]
type Generator struct {
	rng Rand
}

// New creates a Generator over the given random source.
func New(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator seeded from the wall clock.
func NewSeeded() *Generator {
	return New(NewRand())
}

// NewRand returns a PCG-backed source seeded from the wall clock.
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Generate produces one problem. It never fails; a MaxSum below 1 is
// treated as 1 (Config.Validate rejects such configs at load time).
func (g *Generator) Generate(cfg Config) Problem {
	maxSum := cfg.MaxSum
	if maxSum < 1 {
		maxSum = 1
	}

	if g.rng.IntN(2) == 0 {
		a := g.between(0, maxSum)
		b := g.between(0, maxSum-a)
		return Problem{Op: OpAdd, A: a, B: b, Answer: a + b}
	}

	a := g.between(1, maxSum)
	b := g.between(0, a)
	return Problem{Op: OpSubtract, A: a, B: b, Answer: a - b}
}

// between returns a uniform integer in [lo, hi], inclusive.
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
