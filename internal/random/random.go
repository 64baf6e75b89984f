package random

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the source of randomness for target assignment
type Roller interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int

	// Shuffle permutes n elements uniformly using swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// SeededRoller is a Roller backed by math/rand that is safe for concurrent use
type SeededRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (r *SeededRoller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Shuffle permutes n elements uniformly
func (r *SeededRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

// Pick returns a uniformly chosen element of items. ok is false when items is empty.
func Pick[T any](r Roller, items []T) (item T, index int, ok bool) {
	if len(items) == 0 {
		return item, -1, false
	}
	index = r.Intn(len(items))
	return items[index], index, true
}
