package presenter

import (
	"fmt"
	"io"

	"prngcheck/internal/stats"
)

// ProvenanceTag identifies this implementation in the printed report, so
// the numbers can be cross-checked against an independent implementation
// run on the same input.
const ProvenanceTag = "Go"

// PrintSummary writes the two report lines, mean first.
func PrintSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "[%s] Mean: %.6f\n", ProvenanceTag, s.Mean)
	fmt.Fprintf(w, "[%s] Variance: %.6f\n", ProvenanceTag, s.Variance)
}
