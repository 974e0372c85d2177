// Copyright 2018, the boink contributors.

package minimizer

import (
	"github.com/ctb/boink/alphabet"
	"github.com/ctb/boink/hashing"
)

// Record names one emitted minimizer: the hash-minimal k-mer within some
// window of the scanned sequence, and the 0-based start position of that
// k-mer.
type Record struct {
	Hash uint64
	Pos  uint32
}

// WKMinimizer computes the windowed-k-minimizer decomposition of a
// sequence: the sequence's k-mers are grouped into sliding windows of
// WindowSize consecutive k-mers, and the hash-minimal k-mer of each
// window is reported once for every run of consecutive windows it is
// minimal for.
type WKMinimizer struct {
	windowSize int32
	k          uint16
	alphabet   alphabet.Alphabet
}

// New builds a minimizer scanner over k-mers of size k, using windows of
// windowSize consecutive k-mers.
func New(windowSize int32, k uint16, a alphabet.Alphabet) *WKMinimizer {
	return &WKMinimizer{windowSize: windowSize, k: k, alphabet: a}
}

// K returns the k-mer size.
func (m *WKMinimizer) K() uint16 { return m.k }

// GetMinimizers returns every minimizer of seq, in order of increasing
// window position, skipping immediate repeats: a minimizer already
// reported for the prior window that is still minimal for the next
// window is not reported again. Fails with SequenceTooShortError if seq
// does not contain at least WindowSize k-mers.
func (m *WKMinimizer) GetMinimizers(seq string) ([]Record, error) {
	shifter := hashing.NewRollingHashShifter(m.k, m.alphabet)
	it, err := hashing.NewKmerIterator(seq, shifter)
	if err != nil {
		return nil, err
	}

	type kmer struct {
		hash uint64
		pos  uint32
	}

	var kmers []kmer
	for !it.Done() {
		h, err := it.Next()
		if err != nil {
			return nil, err
		}
		kmers = append(kmers, kmer{hash: h, pos: uint32(it.StartPos())})
	}

	w := int(m.windowSize)
	if w <= 0 || w > len(kmers) {
		return nil, &hashing.SequenceTooShortError{K: int(m.k) + w - 1, Have: len(seq)}
	}

	var out []Record
	var last *Record
	for start := 0; start+w <= len(kmers); start++ {
		minIdx := start
		for i := start + 1; i < start+w; i++ {
			if kmers[i].hash < kmers[minIdx].hash {
				minIdx = i
			}
		}
		rec := Record{Hash: kmers[minIdx].hash, Pos: kmers[minIdx].pos}
		if last == nil || *last != rec {
			out = append(out, rec)
			last = &rec
		}
	}
	return out, nil
}
