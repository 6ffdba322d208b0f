package scoring

import (
	"path"
	"strings"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// between draws uniformly from the inclusive range.
func between(rng domain.RandomSource, r domain.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// chance reports true with probability p.
func chance(rng domain.RandomSource, p float64) bool {
	return rng.Float64() < p
}

// Extension returns the lowercased extension of a file name without the dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}
