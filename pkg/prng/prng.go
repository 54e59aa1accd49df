// Package prng implements small deterministic pseudorandom generators
// whose output sequences can be fed to the quality diagnostics.
package prng

// Generator produces a deterministic stream of 32-bit values from a seed.
type Generator interface {
	Next() uint32
}

// Float64 maps the generator's next value into [0, 1).
func Float64(g Generator) float64 {
	return float64(g.Next()) / (1 << 32)
}
