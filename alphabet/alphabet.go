// Copyright 2018, the boink contributors.

// Package alphabet defines the symbol sets that the hashing and
// processing packages validate k-mers against.
package alphabet

// Alphabet is an ordered, non-empty set of valid symbols. Symbols must be
// unique; order matters because gather operations enumerate extensions
// in alphabet order (see hashing.RollingHashShifter.GatherRight).
type Alphabet struct {
	symbols []byte
	valid   [256]bool
}

// New builds an Alphabet from the given symbols. Panics if symbols is
// empty or contains a duplicate, since an Alphabet is always built from a
// fixed, compile-time-known constant in this module.
func New(symbols string) Alphabet {
	if len(symbols) == 0 {
		panic("alphabet: symbols must be non-empty")
	}
	a := Alphabet{symbols: []byte(symbols)}
	for _, c := range a.symbols {
		if a.valid[c] {
			panic("alphabet: duplicate symbol " + string(c))
		}
		a.valid[c] = true
	}
	return a
}

// IsValid reports whether c is a member of the alphabet.
func (a Alphabet) IsValid(c byte) bool {
	return a.valid[c]
}

// IsValidSeq reports whether every byte of seq is a member of the
// alphabet. Returns true for an empty sequence.
func (a Alphabet) IsValidSeq(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !a.valid[seq[i]] {
			return false
		}
	}
	return true
}

// Symbols returns the ordered symbols of the alphabet. The caller must not
// mutate the returned slice.
func (a Alphabet) Symbols() []byte {
	return a.symbols
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// DNA is the four-symbol nucleotide alphabet used throughout this module.
// Non-DNA alphabets are out of scope (spec Non-goals); Alphabet is kept
// generic only so a caller can construct one of their own.
var DNA = New("ACGT")
