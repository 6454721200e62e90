package oracle

import (
	"errors"
	"math"
)

// ErrInvalidProbability is returned when num/denom is not a probability.
var ErrInvalidProbability = errors.New("oracle: probability must satisfy 0 <= num/denom <= 1 with denom > 0")

// alwaysTrue marks a distribution with p == 1.  No 64-bit draw can be
// strictly below MaxUint64 with certainty, so p == 1 short-circuits instead.
const alwaysTrue = math.MaxUint64

// scale is 2^64 as a float64.
const scale = 2.0 * (1 << 63)

// Bernoulli yields true with a fixed probability, compared against 64
// uniform bits from a Source.
type Bernoulli struct {
	threshold uint64
}

// NewBernoulli builds a distribution with success probability num/denom.
func NewBernoulli(num, denom uint32) (Bernoulli, error) {
	if denom == 0 || num > denom {
		return Bernoulli{}, ErrInvalidProbability
	}
	if num == denom {
		return Bernoulli{threshold: alwaysTrue}, nil
	}
	return Bernoulli{threshold: uint64(float64(num) / float64(denom) * scale)}, nil
}

// Sample draws one decision.  An always-true distribution does not touch src.
func (b Bernoulli) Sample(src *Source) bool {
	if b.threshold == alwaysTrue {
		return true
	}
	return src.Uint64() < b.threshold
}

// P returns the success probability.
func (b Bernoulli) P() float64 {
	if b.threshold == alwaysTrue {
		return 1
	}
	return float64(b.threshold) / scale
}
