package combat

import "math/rand"

// RNG wraps math/rand behind the few rolls combat needs, so tests can
// seed outcomes deterministically.
type RNG struct {
	src *rand.Rand
}

// NewRNG creates a seeded RNG.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in the inclusive range [min, max].
func (r *RNG) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// Percent reports success with the given percentage chance.
func (r *RNG) Percent(chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return r.src.Intn(100) < chance
}
