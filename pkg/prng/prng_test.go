package prng

import (
	"math"
	"testing"
)

func TestLCGRejectsZeroSeed(t *testing.T) {
	if _, err := NewLCG(0); err == nil {
		t.Fatal("expected an error for zero seed")
	}
}

func TestXorShift32RejectsZeroSeed(t *testing.T) {
	if _, err := NewXorShift32(0); err == nil {
		t.Fatal("expected an error for zero seed")
	}
}

func TestLCGDeterministic(t *testing.T) {
	g1, err := NewLCG(12345)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := NewLCG(12345)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		if a, b := g1.Next(), g2.Next(); a != b {
			t.Fatalf("streams diverge at step %d: %d vs %d", i, a, b)
		}
	}
}

func TestLCGKnownSequence(t *testing.T) {
	g, err := NewLCG(1)
	if err != nil {
		t.Fatal(err)
	}
	// X = (1103515245*X + 12345) mod 2^31 starting from 1
	want := []uint32{1103527590, 377401575, 662824084}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("step %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestXorShift32NeverReturnsZero(t *testing.T) {
	g, err := NewXorShift32(2463534242)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100000; i++ {
		if g.Next() == 0 {
			t.Fatalf("state collapsed to zero at step %d", i)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	g, err := NewXorShift32(7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100000; i++ {
		f := Float64(g)
		if f < 0 || f >= 1 {
			t.Fatalf("value out of [0,1): %v", f)
		}
	}
}

func TestXorShift32UniformMoments(t *testing.T) {
	g, err := NewXorShift32(42)
	if err != nil {
		t.Fatal(err)
	}

	const n = 200000
	sum := 0.0
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = Float64(g)
		sum += samples[i]
	}
	mean := sum / n

	sqSum := 0.0
	for _, x := range samples {
		d := x - mean
		sqSum += d * d
	}
	variance := sqSum / n

	// uniform [0,1): mean 0.5, variance 1/12
	if math.Abs(mean-0.5) > 0.01 {
		t.Errorf("mean too far from 0.5: %v", mean)
	}
	if math.Abs(variance-1.0/12) > 0.01 {
		t.Errorf("variance too far from 1/12: %v", variance)
	}
}

func TestRandomSeedVaries(t *testing.T) {
	a, b := RandomSeed(), RandomSeed()
	if a == b {
		t.Error("consecutive RandomSeed calls returned the same value")
	}
}
