package stats

import "gonum.org/v1/gonum/floats"

// DefaultBins is the bin count used by the diagnostic tool.
const DefaultBins = 50

// Bin is one histogram bin. The interval is [Low, High) except for the
// last bin of a histogram, which is closed on both ends.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram is an equal-width partition of [min(data), max(data)].
type Histogram struct {
	Bins []Bin
}

// NewHistogram bins data into the given number of equal-width bins over
// [min, max]. A constant sequence (min == max) collapses to a single bin
// holding every sample, so no zero-width division ever runs. The bin
// counts always sum to len(data).
func NewHistogram(data []float64, bins int) (*Histogram, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	min := floats.Min(data)
	max := floats.Max(data)

	if min == max {
		return &Histogram{Bins: []Bin{{Low: min, High: max, Count: len(data)}}}, nil
	}

	width := (max - min) / float64(bins)
	h := &Histogram{Bins: make([]Bin, bins)}
	for i := range h.Bins {
		h.Bins[i].Low = min + float64(i)*width
		h.Bins[i].High = min + float64(i+1)*width
	}
	// the partition must end exactly at max
	h.Bins[bins-1].High = max

	for _, x := range data {
		idx := int((x - min) / width)
		if idx >= bins {
			// x == max lands in the closed last bin
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}

	return h, nil
}

// Counts returns the bin-count vector in bin order.
func (h *Histogram) Counts() []int {
	counts := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		counts[i] = b.Count
	}
	return counts
}
