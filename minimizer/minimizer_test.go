// Copyright 2018, the boink contributors.

package minimizer

import (
	"testing"

	"github.com/ctb/boink/alphabet"
	"github.com/ctb/boink/hashing"
)

func TestGetMinimizersMatchesBruteForce(t *testing.T) {
	seq := "ACGTACGTTGCA"
	k := uint16(3)
	windowSize := int32(4)

	m := New(windowSize, k, alphabet.DNA)
	records, err := m.GetMinimizers(seq)
	if err != nil {
		t.Fatalf("GetMinimizers: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("expected at least one minimizer")
	}

	for _, rec := range records {
		want, err := hashing.NewRollingHashShifter(k, alphabet.DNA).Hash(seq[rec.Pos : int(rec.Pos)+int(k)])
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		if rec.Hash != want {
			t.Fatalf("minimizer at pos %d has hash %d, recomputed hash of its substring is %d", rec.Pos, rec.Hash, want)
		}
	}
}

func TestGetMinimizersTooShort(t *testing.T) {
	m := New(10, 3, alphabet.DNA)
	if _, err := m.GetMinimizers("ACGT"); err == nil {
		t.Fatalf("expected an error for a sequence shorter than window+k-1")
	}
}
