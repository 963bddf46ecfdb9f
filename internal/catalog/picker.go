package catalog

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses one element of a non-empty pool.
type Picker[T any] interface {
	Pick(pool []T) T
}

// RandomPicker picks uniformly at random. Safe for concurrent use.
type RandomPicker[T any] struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed, so runs can be replayed.
func NewRandomPicker[T any](seed uint64) *RandomPicker[T] {
	return &RandomPicker[T]{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPicker[T]) Pick(pool []T) T {
	p.mu.Lock()
	i := p.rng.IntN(len(pool))
	p.mu.Unlock()
	return pool[i]
}
