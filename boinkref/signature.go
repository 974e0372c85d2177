// Copyright 2018, the boink contributors.

package boinkref

import (
	"math/rand"

	"github.com/chmduquesne/rollinghash/buzhash32"

	"github.com/ctb/boink/hashing"
)

// MinHashSignature is a reference consumers.MinHashSink implementation:
// a bottom-1-per-hash-function MinHash sketch, rolled once per hash
// function across the whole sequence rather than at fixed window
// offsets.
type MinHashSignature struct {
	windowSize int
	tables     [][256]uint32
	minima     []uint32
}

// NewMinHashSignature builds a sketch of numHash independent hash
// functions, each rolled over windows of windowSize bytes.
func NewMinHashSignature(numHash, windowSize int) *MinHashSignature {
	tables := genTables(numHash)
	minima := make([]uint32, numHash)
	for i := range minima {
		minima[i] = ^uint32(0)
	}
	return &MinHashSignature{windowSize: windowSize, tables: tables, minima: minima}
}

// genTables builds numHash independent, collision-free 256-entry
// permutation tables, one per rolling hash function.
func genTables(numHash int) [][256]uint32 {
	tables := make([][256]uint32, numHash)
	for j := 0; j < numHash; j++ {
		seen := make(map[uint32]bool)
		for i := 0; i < 256; i++ {
			for {
				x := uint32(rand.Int63())
				if !seen[x] {
					tables[j][i] = x
					seen[x] = true
					break
				}
			}
		}
	}
	return tables
}

// AddSequence rolls every hash function across seq and folds each
// window's value into that function's running minimum. If seq is
// shorter than the window size, this fails with SequenceTooShortError
// unless force is true, in which case the sequence is silently skipped.
func (m *MinHashSignature) AddSequence(seq string, force bool) error {
	if len(seq) < m.windowSize {
		if force {
			return nil
		}
		return &hashing.SequenceTooShortError{K: m.windowSize, Have: len(seq)}
	}

	b := []byte(seq)
	for j, table := range m.tables {
		h := buzhash32.NewFromUint32Array(table)
		h.Write(b[:m.windowSize])
		if v := h.Sum32(); v < m.minima[j] {
			m.minima[j] = v
		}
		for i := m.windowSize; i < len(b); i++ {
			h.Roll(b[i])
			if v := h.Sum32(); v < m.minima[j] {
				m.minima[j] = v
			}
		}
	}
	return nil
}

// Values returns a copy of the current per-hash-function minima, the
// MinHash signature itself.
func (m *MinHashSignature) Values() []uint32 {
	out := make([]uint32, len(m.minima))
	copy(out, m.minima)
	return out
}
