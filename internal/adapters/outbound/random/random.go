package random

import (
	"math/rand/v2"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// New returns a PCG-backed source for a seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seeded yields the same stream for every analysis, so a given file and
// seed always produce the same report.
func Seeded(seed uint64) func() domain.RandomSource {
	return func() domain.RandomSource { return New(seed) }
}

// Entropy yields an independently seeded stream per analysis.
func Entropy() func() domain.RandomSource {
	return func() domain.RandomSource { return New(rand.Uint64()) }
}
