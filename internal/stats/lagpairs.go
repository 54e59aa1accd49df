package stats

// Pair is one lag-1 point (x_i, x_{i+1}).
type Pair struct {
	X float64
	Y float64
}

// LagPairs builds the series of consecutive pairs (x_i, x_{i+1}) for
// i in [0, N-2]. Sequences of fewer than two samples yield an empty
// series; that is not an error, there is simply nothing to correlate.
func LagPairs(data []float64) []Pair {
	if len(data) < 2 {
		return nil
	}
	pairs := make([]Pair, len(data)-1)
	for i := 0; i < len(data)-1; i++ {
		pairs[i] = Pair{X: data[i], Y: data[i+1]}
	}
	return pairs
}
