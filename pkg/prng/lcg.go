package prng

import "errors"

// LCG is a linear congruential generator:
//
//	X = (a*X + c) mod m
//
// The default parameters are the classic glibc constants
// (m = 2^31, a = 1103515245, c = 12345). Simple and fast, but known to
// exhibit short periods and lattice structure in consecutive pairs.
type LCG struct {
	m, a, c uint32
	x       uint32
}

// NewLCG builds a generator with the default parameters. The seed must
// be non-zero.
func NewLCG(seed uint32) (*LCG, error) {
	return NewCustomLCG(1<<31, 1103515245, 12345, seed)
}

// NewCustomLCG builds a generator with explicit parameters.
func NewCustomLCG(m, a, c, seed uint32) (*LCG, error) {
	if seed == 0 {
		return nil, errors.New("seed cannot be zero")
	}
	return &LCG{m: m, a: a, c: c, x: seed}, nil
}

// Next advances the state and returns it.
func (g *LCG) Next() uint32 {
	g.x = (g.a*g.x + g.c) % g.m
	return g.x
}
