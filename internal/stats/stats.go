// Package stats computes the descriptive statistics and derived series
// used to judge the quality of a pseudorandom sequence.
package stats

import "errors"

// ErrEmptyInput is returned when a computation needs at least one sample.
var ErrEmptyInput = errors.New("empty input: no samples")

// Summary holds the two moments reported for a sequence.
type Summary struct {
	Mean     float64
	Variance float64
}

// Describe computes the mean and the population variance (divisor N) of
// the sequence. The divisor is deliberately N rather than N-1 so that
// results match other implementations analyzing the same file; do not
// replace the loop with a library routine that applies Bessel's
// correction.
func Describe(data []float64) (Summary, error) {
	n := len(data)
	if n == 0 {
		return Summary{}, ErrEmptyInput
	}

	sum := 0.0
	for _, x := range data {
		sum += x
	}
	mean := sum / float64(n)

	sqSum := 0.0
	for _, x := range data {
		d := x - mean
		sqSum += d * d
	}

	return Summary{
		Mean:     mean,
		Variance: sqSum / float64(n),
	}, nil
}
