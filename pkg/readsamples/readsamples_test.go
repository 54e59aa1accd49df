package readsamples

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPreservesOrder(t *testing.T) {
	path := writeFile(t, "0.5\n0.25\n0.75\n")
	samples, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 0.25, 0.75}
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], samples[i])
		}
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	path := writeFile(t, "\n1.0\n\n   \n2.0\n\n")
	samples, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
}

func TestReadScientificNotation(t *testing.T) {
	path := writeFile(t, "1.5e-3\n-2E4\n")
	samples, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if samples[0] != 1.5e-3 || samples[1] != -2e4 {
		t.Errorf("unexpected values: %v", samples)
	}
}

func TestReadRejectsGarbageLine(t *testing.T) {
	path := writeFile(t, "1.0\nnot-a-number\n3.0\n")
	if _, err := Read(path); err == nil {
		t.Fatal("expected a parse error, got none")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected an error for a missing file, got none")
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, "")
	samples, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 0 {
		t.Fatalf("expected no samples, got %d", len(samples))
	}
}
