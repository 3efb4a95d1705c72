package mockdata

import "math/rand/v2"

// Source returns uniformly distributed floats in [0, 1)
type Source func() float64

// DefaultSource returns the process-wide generator, safe for concurrent use
func DefaultSource() Source {
	return rand.Float64
}

// NewSeededSource returns a deterministic source. The returned source is
// not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Float64
}
