package scoring_test

import "math/rand/v2"

// edgeRand always draws the lowest (or highest) value of every range.
type edgeRand struct {
	high bool
	f    float64
}

func (r edgeRand) IntN(n int) int {
	if r.high {
		return n - 1
	}
	return 0
}

func (r edgeRand) Float64() float64 { return r.f }

func lowest() edgeRand  { return edgeRand{f: 0} }
func highest() edgeRand { return edgeRand{high: true, f: 0.999} }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
