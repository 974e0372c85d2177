// Copyright 2018, the boink contributors.

package hashing

import (
	"testing"

	"github.com/ctb/boink/alphabet"
)

func TestKmerIteratorExactFit(t *testing.T) {
	s := NewRollingHashShifter(4, alphabet.DNA)
	it, err := NewKmerIterator("ACGT", s)
	if err != nil {
		t.Fatalf("NewKmerIterator: %v", err)
	}
	if it.Done() {
		t.Fatalf("fresh iterator reports done")
	}
	h, err := it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if h != hashSeq(4, alphabet.DNA, "ACGT") {
		t.Fatalf("wrong hash for sole k-mer")
	}
	if it.StartPos() != 0 || it.EndPos() != 4 {
		t.Fatalf("StartPos/EndPos = %d/%d, want 0/4", it.StartPos(), it.EndPos())
	}
	if !it.Done() {
		t.Fatalf("iterator over exactly one k-mer did not report done")
	}
	if _, err := it.Next(); err == nil {
		t.Fatalf("Next past end did not error")
	}
}

func TestKmerIteratorMultipleKmers(t *testing.T) {
	seq := "ACGTACG"
	k := uint16(3)
	s := NewRollingHashShifter(k, alphabet.DNA)
	it, err := NewKmerIterator(seq, s)
	if err != nil {
		t.Fatalf("NewKmerIterator: %v", err)
	}

	wantStarts := []int{0, 1, 2, 3, 4}
	var gotStarts []int
	count := 0
	for !it.Done() {
		h, err := it.Next()
		if err != nil {
			t.Fatalf("Next at count %d: %v", count, err)
		}
		want := hashSeq(k, alphabet.DNA, seq[it.StartPos():it.EndPos()])
		if h != want {
			t.Fatalf("k-mer %d: got hash %d, want %d (for %q)", count, h, want, seq[it.StartPos():it.EndPos()])
		}
		gotStarts = append(gotStarts, it.StartPos())
		count++
	}
	if count != 5 {
		t.Fatalf("yielded %d k-mers, want 5", count)
	}
	for i, want := range wantStarts {
		if gotStarts[i] != want {
			t.Fatalf("k-mer %d start = %d, want %d", i, gotStarts[i], want)
		}
	}
}

func TestKmerIteratorTooShort(t *testing.T) {
	s := NewRollingHashShifter(5, alphabet.DNA)
	if _, err := NewKmerIterator("ACGT", s); err == nil {
		t.Fatalf("expected SequenceTooShortError")
	}
}

func TestKmerIteratorLazyInit(t *testing.T) {
	s := NewRollingHashShifter(4, alphabet.DNA)
	if _, err := NewKmerIterator("ACGT", s); err != nil {
		t.Fatalf("NewKmerIterator: %v", err)
	}
	if s.Initialized() {
		t.Fatalf("shifter was initialized before the first call to Next")
	}
}
