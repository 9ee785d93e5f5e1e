package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Randomizer is the single source of randomness for a session: deck
// shuffling, die rolls, hero assignment and instance id generation.
// Injectable so tests can supply deterministic sequences.
type Randomizer interface {
	// Shuffle randomizes n elements using the provided swap function.
	Shuffle(n int, swap func(i, j int))
	// Roll returns a uniform die roll in [1,6].
	Roll() int
	// Intn returns a uniform integer in [0,n).
	Intn(n int) int
	// NewID returns a fresh unique identifier.
	NewID() string
}

// RollSucceeds is the shared success predicate for die-gated effects:
// an even roll succeeds.
func RollSucceeds(roll int) bool {
	return roll%2 == 0
}

type defaultRandomizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomizer returns a time-seeded Randomizer backed by math/rand,
// with uuid-based instance ids.
func NewRandomizer() Randomizer {
	return &defaultRandomizer{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *defaultRandomizer) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}

func (r *defaultRandomizer) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(6) + 1
}

func (r *defaultRandomizer) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *defaultRandomizer) NewID() string {
	return uuid.NewString()
}
