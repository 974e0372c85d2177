// Copyright 2018, the boink contributors.

package hashing

import (
	"hash/fnv"
	"math/bits"

	"github.com/ctb/boink/alphabet"
)

// CyclicHash is a cyclic polynomial (Karp-Rabin/ntHash-style) rolling hash
// over a K-symbol window. It maintains the invariant that after K calls to
// Eat with the symbols of s[0:K], Value() equals the one-shot hash of
// s[0:K], and that Update/ReverseUpdate are exact inverses of one another
// for the same argument pair. GatherRight/GatherLeft in shifter.go exploit
// this to peek at a shift without mutating the window.
//
// Each alphabet symbol is assigned a fixed pseudo-random 64-bit value; the
// hash of a window is the XOR of those values, each rotated left by its
// distance from the right end of the window. Sliding the window by one
// symbol only touches the two symbols at the boundary, making every
// operation O(1) and allocation-free.
type CyclicHash struct {
	k         uint16
	table     [256]uint64
	hashvalue uint64
}

// symbolTable assigns a fixed, deterministic 64-bit value to every symbol
// of a. The values are derived from FNV-1a rather than a seeded random
// source so that CyclicHash.Value is a pure function of window contents
// across every instance and every process run.
func symbolTable(a alphabet.Alphabet) [256]uint64 {
	var table [256]uint64
	for i, c := range a.Symbols() {
		h := fnv.New64a()
		h.Write([]byte{c, byte(i)})
		table[c] = h.Sum64()
		// Guard against the vanishingly unlikely zero hash, which would
		// make this symbol invisible to XOR-based combination.
		if table[c] == 0 {
			table[c] = 0x9e3779b97f4a7c15 ^ uint64(c)
		}
	}
	return table
}

// NewCyclicHash builds an empty CyclicHash for windows of size k over a.
func NewCyclicHash(k uint16, a alphabet.Alphabet) *CyclicHash {
	return &CyclicHash{k: k, table: symbolTable(a)}
}

// Eat appends a symbol to the hash, intended for filling the initial
// window one symbol at a time. After K calls to Eat with s[0:K], Value
// equals the one-shot hash of s[0:K].
func (h *CyclicHash) Eat(c byte) {
	h.hashvalue = bits.RotateLeft64(h.hashvalue, 1) ^ h.table[c]
}

// Update advances the window right by one symbol: old leaves at the left,
// new enters at the right. O(1), allocation free.
func (h *CyclicHash) Update(oldc, newc byte) {
	k := int(h.k)
	tmp := h.hashvalue ^ bits.RotateLeft64(h.table[oldc], k-1)
	h.hashvalue = bits.RotateLeft64(tmp, 1) ^ h.table[newc]
}

// ReverseUpdate advances the window left by one symbol: new enters at the
// left, old leaves at the right. The exact inverse of Update when called
// with the same (old, new) pair in the same order used to build the
// current value via Update.
func (h *CyclicHash) ReverseUpdate(newc, oldc byte) {
	k := int(h.k)
	tmp := h.hashvalue ^ h.table[oldc]
	h.hashvalue = bits.RotateLeft64(tmp, -1) ^ bits.RotateLeft64(h.table[newc], k-1)
}

// Value returns the current hash.
func (h *CyclicHash) Value() uint64 {
	return h.hashvalue
}

// Reset clears the hash back to its zero state so the same CyclicHash can
// be reused to Eat a fresh window.
func (h *CyclicHash) Reset() {
	h.hashvalue = 0
}

// hashSeq computes the one-shot forward hash of a K-symbol sequence,
// independent of any shifter state. Used by RollingHashShifter.Hash and
// by KmerIterator's invariant tests.
func hashSeq(k uint16, a alphabet.Alphabet, seq string) uint64 {
	h := NewCyclicHash(k, a)
	for i := 0; i < int(k); i++ {
		h.Eat(seq[i])
	}
	return h.Value()
}
