package ai

import (
	"math/rand/v2"
	"sync"
)

// Chooser returns an index in [0, n). Every random pick of the engine goes
// through one, so tests can force a deterministic selection.
type Chooser func(n int) int

// NewChooser returns a Chooser seeded with seed, safe for concurrent use.
// A nil seed draws from the process wide generator.
func NewChooser(seed *uint64) Chooser {
	if seed == nil {
		return rand.IntN
	}
	var mu sync.Mutex
	rng := rand.New(rand.NewPCG(*seed, *seed))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.IntN(n)
	}
}

// Pick returns a uniformly chosen element, false when items is empty.
func Pick[T any](choose Chooser, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[choose(len(items))], true
}
