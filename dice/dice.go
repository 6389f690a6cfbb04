package dice

import (
	"time"

	"golang.org/x/exp/rand"
)

// Roller provides the random draws used by combat, capital placement and the AI.
// It is an interface so tests can queue exact outcomes.
type Roller interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0)
	Float64() float64
}

// Source implements Roller on top of a seeded PCG generator.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. The same seed reproduces the same game.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() *Source {
	return New(uint64(time.Now().UnixNano()))
}

func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform draws a value in [lo, hi) from r.
func Uniform(r Roller, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
