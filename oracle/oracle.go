// Package oracle produces the reproducible stream of "mutate this call site"
// decisions that drives every strategy run.
//
// Two oracles built from the same seed and denominator emit the same
// decisions in the same order, so all strategies measured by one process
// walk exactly the same mutation pattern.
package oracle

import "fmt"

// Oracle is a seeded Bernoulli(1/denom) decision stream.  It is consumed
// strictly sequentially and must not be shared between goroutines.
type Oracle struct {
	dist Bernoulli
	src  *Source
}

// New returns an oracle that answers true with probability 1/denom.
// denom == 0 fails with ErrInvalidProbability.
func New(denom uint32, seed [32]byte) (*Oracle, error) {
	dist, err := NewBernoulli(1, denom)
	if err != nil {
		return nil, fmt.Errorf("mutation denominator %d: %w", denom, err)
	}
	return &Oracle{dist: dist, src: NewSource(seed)}, nil
}

// Next returns the next decision and advances the stream.
func (o *Oracle) Next() bool {
	return o.dist.Sample(o.src)
}

// Probability returns the configured mutation probability.
func (o *Oracle) Probability() float64 {
	return o.dist.P()
}
