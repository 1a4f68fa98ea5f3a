package rng

import "math/rand"

// Seeded returns a deterministic Generator for the given seed
func Seeded(seed int64) Generator {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

type seeded struct {
	rng *rand.Rand
}

func (s *seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
