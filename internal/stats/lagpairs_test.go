package stats

import "testing"

func TestLagPairs(t *testing.T) {
	pairs := LagPairs([]float64{1, 2, 3})
	want := []Pair{{1, 2}, {2, 3}}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, want[i], pairs[i])
		}
	}
}

func TestLagPairsShortSequences(t *testing.T) {
	if pairs := LagPairs(nil); len(pairs) != 0 {
		t.Errorf("expected empty series for no samples, got %d pairs", len(pairs))
	}
	if pairs := LagPairs([]float64{42}); len(pairs) != 0 {
		t.Errorf("expected empty series for one sample, got %d pairs", len(pairs))
	}
}
