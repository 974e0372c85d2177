// Copyright 2018, the boink contributors.

package boinkref

import (
	"github.com/golang-collections/go-datastructures/bitarray"

	"github.com/ctb/boink/alphabet"
	"github.com/ctb/boink/hashing"
)

// UKHSSignature is a reference consumers.UKHSSink implementation: a
// compact presence sketch of every k-mer hash observed, backed by a
// single bitarray.
type UKHSSignature struct {
	k        uint16
	alphabet alphabet.Alphabet
	bits     bitarray.BitArray
	size     uint64
	count    uint64
}

// NewUKHSSignature builds a signature over k-mers of size k, sized for
// approximately size distinct hash buckets.
func NewUKHSSignature(k uint16, a alphabet.Alphabet, size uint64) *UKHSSignature {
	if size == 0 {
		size = 1 << 20
	}
	return &UKHSSignature{k: k, alphabet: a, bits: bitarray.NewBitArray(size), size: size}
}

// InsertSequence hashes every k-mer of seq and sets its bucket bit,
// tallying the number of previously-unset buckets touched.
func (s *UKHSSignature) InsertSequence(seq string) error {
	shifter := hashing.NewRollingHashShifter(s.k, s.alphabet)
	it, err := hashing.NewKmerIterator(seq, shifter)
	if err != nil {
		return err
	}
	for !it.Done() {
		h, err := it.Next()
		if err != nil {
			return err
		}
		idx := h % s.size
		if set, _ := s.bits.GetBit(idx); !set {
			s.count++
		}
		s.bits.SetBit(idx)
	}
	return nil
}

// Count returns the number of distinct buckets set so far.
func (s *UKHSSignature) Count() uint64 { return s.count }
