package prng

import "errors"

// XorShift32 is Marsaglia's 32-bit xorshift generator. Better quality
// than a plain LCG for the same cost, though the state must never be
// zero (zero is a fixed point of the recurrence).
type XorShift32 struct {
	state uint32
}

// NewXorShift32 builds a generator. The seed must be non-zero.
func NewXorShift32(seed uint32) (*XorShift32, error) {
	if seed == 0 {
		return nil, errors.New("seed cannot be zero")
	}
	return &XorShift32{state: seed}, nil
}

// Next advances the state with the 13/17/5 shift triple and returns it.
func (g *XorShift32) Next() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return g.state
}
