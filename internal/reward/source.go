package reward

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the random draws of the engine.
// Implementations must be safe for concurrent use.
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// NewSource returns the process-wide random source
func NewSource() Source {
	return globalSource{}
}

// FixedSource replays scripted draws in order and panics when it runs out.
// It exists for deterministic tests of the engine and its callers.
type FixedSource struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
}

func (f *FixedSource) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Floats) == 0 {
		panic("reward: FixedSource out of floats")
	}
	v := f.Floats[0]
	f.Floats = f.Floats[1:]
	return v
}

func (f *FixedSource) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Ints) == 0 {
		panic("reward: FixedSource out of ints")
	}
	v := f.Ints[0]
	f.Ints = f.Ints[1:]
	return v % n
}
