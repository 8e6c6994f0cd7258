package japanese

import (
	"math/rand/v2"
	"sync"
)

// MinRandomNumber is the smallest value RandomNumber returns; zero is never drawn.
const MinRandomNumber = 1

// Source is the subset of *rand.Rand used to draw practice numbers.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator draws practice numbers from an injectable source.
type Generator struct {
	mu  sync.Mutex
	src Source
}

// NewGenerator wraps src. A nil src uses the process-wide random source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeededGenerator returns a Generator whose sequence is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// RandomNumber returns a number uniformly distributed over [1, 99999].
func (g *Generator) RandomNumber() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return MinRandomNumber + g.src.IntN(MaxNumber-MinRandomNumber+1)
}

// IntN exposes the underlying source so callers can shuffle with the same
// sequence that drives number selection.
func (g *Generator) IntN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.src.IntN(n)
}

var defaultGenerator = NewGenerator(nil)

// RandomNumber draws from the process-wide random source.
func RandomNumber() int {
	return defaultGenerator.RandomNumber()
}
