// Package bench holds the benchmark payload and the three strategy loops
// whose cost the driver measures.
package bench

import (
	"cowbench/constants"
	"cowbench/oracle"
)

// Payload is the input to one strategy run: a private copy of the fixed
// text and a freshly seeded oracle.  Build a new one per run; a run
// consumes its oracle.
type Payload struct {
	Text   []byte
	Oracle *oracle.Oracle
}

// NewPayload builds a payload whose oracle mutates with probability 1/denom.
func NewPayload(denom uint32) (*Payload, error) {
	o, err := oracle.New(denom, constants.Seed)
	if err != nil {
		return nil, err
	}
	return &Payload{
		Text:   []byte(constants.PayloadText),
		Oracle: o,
	}, nil
}
