// Copyright 2018, the boink contributors.

package hashing

import "github.com/ctb/boink/alphabet"

// Shifter is the sliding k-mer window contract every consumer of the
// pipeline programs against. RollingHashShifter is the one concrete
// implementation provided; the interface exists so a future forward+reverse
// hash variant can be substituted without touching KmerIterator or the
// processing package.
type Shifter interface {
	// K returns the window width.
	K() uint16

	// Initialized reports whether the window currently holds K valid
	// symbols.
	Initialized() bool

	// Value returns the hash of the current window. Meaningless (zero)
	// before the shifter is initialized.
	Value() uint64

	// Hash computes a fresh forward hash of sequence without touching the
	// shifter's own window or hasher state.
	Hash(sequence string) (uint64, error)

	// SetCursor positions the window and returns the resulting hash. See
	// RollingHashShifter.SetCursor for the documented already-initialized
	// behavior.
	SetCursor(sequence string) (uint64, error)

	// ShiftRight appends c at the window's right end, evicting the
	// leftmost symbol, and returns the new hash.
	ShiftRight(c byte) (uint64, error)

	// ShiftLeft prepends c at the window's left end, evicting the
	// rightmost symbol, and returns the new hash.
	ShiftLeft(c byte) (uint64, error)

	// GatherRight returns, for every alphabet symbol s in alphabet order,
	// the hash that ShiftRight(s) would produce from the current state.
	// The window is left unchanged.
	GatherRight() ([]ShiftRecord, error)

	// GatherLeft is the left-extension analog of GatherRight.
	GatherLeft() ([]ShiftRecord, error)

	// GetCursor returns a copy of the current window as a string.
	GetCursor() string
}

// window is a fixed-size circular buffer holding the current K-symbol
// cursor. Every operation below is O(1) and allocation free except
// cursor(), which materializes a copy by construction.
type window struct {
	buf  []byte
	head int
}

func newWindow(k uint16) window {
	return window{buf: make([]byte, k)}
}

func (w *window) k() int { return len(w.buf) }

func (w *window) front() byte { return w.buf[w.head] }

func (w *window) back() byte { return w.buf[(w.head+len(w.buf)-1)%len(w.buf)] }

// shiftRight evicts the front symbol, appends c at the back, and returns
// the evicted symbol.
func (w *window) shiftRight(c byte) byte {
	evicted := w.buf[w.head]
	w.buf[w.head] = c
	w.head = (w.head + 1) % len(w.buf)
	return evicted
}

// shiftLeft evicts the back symbol, prepends c at the front, and returns
// the evicted symbol. The slot vacated by the evicted back symbol and the
// slot the new front occupies are the same physical cell in the ring
// buffer, so this is a single write.
func (w *window) shiftLeft(c byte) byte {
	backIdx := (w.head + len(w.buf) - 1) % len(w.buf)
	evicted := w.buf[backIdx]
	w.buf[backIdx] = c
	w.head = backIdx
	return evicted
}

func (w *window) cursor() string {
	k := len(w.buf)
	b := make([]byte, k)
	for i := 0; i < k; i++ {
		b[i] = w.buf[(w.head+i)%k]
	}
	return string(b)
}

// RollingHashShifter is the Shifter implementation backed by CyclicHash.
// It transitions once from uninitialized to initialized (via SetCursor)
// and then persists for its lifetime; there is no path back.
type RollingHashShifter struct {
	k        uint16
	alphabet alphabet.Alphabet
	hasher   *CyclicHash
	win      window

	initialized bool
}

// NewRollingHashShifter builds an uninitialized shifter for windows of
// size k over a.
func NewRollingHashShifter(k uint16, a alphabet.Alphabet) *RollingHashShifter {
	return &RollingHashShifter{
		k:        k,
		alphabet: a,
		hasher:   NewCyclicHash(k, a),
		win:      newWindow(k),
	}
}

// NewRollingHashShifterFrom builds a new, independent shifter initialized
// at other's current cursor, for a consumer that needs to fork a cursor
// without disturbing the original.
func NewRollingHashShifterFrom(other *RollingHashShifter) (*RollingHashShifter, error) {
	s := NewRollingHashShifter(other.k, other.alphabet)
	if !other.initialized {
		return s, nil
	}
	if _, err := s.SetCursor(other.GetCursor()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RollingHashShifter) K() uint16 { return s.k }

func (s *RollingHashShifter) Initialized() bool { return s.initialized }

func (s *RollingHashShifter) Value() uint64 { return s.hasher.Value() }

func (s *RollingHashShifter) validate(c byte) error {
	if !s.alphabet.IsValid(c) {
		return &InvalidSymbolError{Symbol: c}
	}
	return nil
}

// Hash computes the one-shot forward hash of sequence[0:K]. Every symbol
// of the full sequence argument is validated, not just the first K, even
// though only the first K symbols feed the hash.
func (s *RollingHashShifter) Hash(sequence string) (uint64, error) {
	if len(sequence) < int(s.k) {
		return 0, &SequenceTooShortError{K: int(s.k), Have: len(sequence)}
	}
	for i := 0; i < len(sequence); i++ {
		if !s.alphabet.IsValid(sequence[i]) {
			return 0, &InvalidSymbolError{Symbol: sequence[i]}
		}
	}
	return hashSeq(s.k, s.alphabet, sequence), nil
}

// SetCursor positions the window at the first K symbols of sequence.
//
// If the shifter is uninitialized, this loads and initializes the window
// from sequence[0:K].
//
// If the shifter is already initialized, this shifts the current window
// right through every symbol of sequence, in order. Callers that want to
// reposition to a fresh K-length window should pass exactly a length-K
// sequence, since a longer argument shifts through all of it rather than
// only its first K symbols.
func (s *RollingHashShifter) SetCursor(sequence string) (uint64, error) {
	if len(sequence) < int(s.k) {
		return 0, &SequenceTooShortError{K: int(s.k), Have: len(sequence)}
	}

	if !s.initialized {
		for i := 0; i < int(s.k); i++ {
			if err := s.validate(sequence[i]); err != nil {
				return 0, err
			}
		}
		for i := 0; i < int(s.k); i++ {
			s.win.buf[i] = sequence[i]
		}
		s.win.head = 0
		s.hasher.Reset()
		for i := 0; i < int(s.k); i++ {
			s.hasher.Eat(s.win.buf[i])
		}
		s.initialized = true
		return s.hasher.Value(), nil
	}

	for i := 0; i < len(sequence); i++ {
		if _, err := s.ShiftRight(sequence[i]); err != nil {
			return 0, err
		}
	}
	return s.hasher.Value(), nil
}

// ShiftRight appends c to the window's right end, evicting the leftmost
// symbol, and updates the hash in O(1). Fails with BoinkError if the
// shifter is not yet initialized.
func (s *RollingHashShifter) ShiftRight(c byte) (uint64, error) {
	if !s.initialized {
		return 0, &BoinkError{Msg: "shift on uninitialized shifter"}
	}
	if err := s.validate(c); err != nil {
		return 0, err
	}
	evicted := s.win.shiftRight(c)
	s.hasher.Update(evicted, c)
	return s.hasher.Value(), nil
}

// ShiftLeft prepends c to the window's left end, evicting the rightmost
// symbol, and updates the hash in O(1).
func (s *RollingHashShifter) ShiftLeft(c byte) (uint64, error) {
	if err := s.validate(c); err != nil {
		return 0, err
	}
	evicted := s.win.shiftLeft(c)
	s.hasher.ReverseUpdate(c, evicted)
	return s.hasher.Value(), nil
}

// GatherRight computes, for every alphabet symbol in order, the hash that
// ShiftRight(symbol) would produce, leaving window and hash bit-identical
// on return. Implemented with Update immediately undone by ReverseUpdate,
// which is an exact arithmetic inverse for the same argument pair.
func (s *RollingHashShifter) GatherRight() ([]ShiftRecord, error) {
	if !s.initialized {
		return nil, &BoinkError{Msg: "gather on uninitialized shifter"}
	}
	front := s.win.front()
	records := make([]ShiftRecord, 0, s.alphabet.Len())
	for _, sym := range s.alphabet.Symbols() {
		s.hasher.Update(front, sym)
		records = append(records, ShiftRecord{Hash: s.hasher.Value(), Symbol: sym})
		s.hasher.ReverseUpdate(front, sym)
	}
	return records, nil
}

// GatherLeft is the left-extension analog of GatherRight, using
// ReverseUpdate immediately undone by Update.
func (s *RollingHashShifter) GatherLeft() ([]ShiftRecord, error) {
	if !s.initialized {
		return nil, &BoinkError{Msg: "gather on uninitialized shifter"}
	}
	back := s.win.back()
	records := make([]ShiftRecord, 0, s.alphabet.Len())
	for _, sym := range s.alphabet.Symbols() {
		s.hasher.ReverseUpdate(sym, back)
		records = append(records, ShiftRecord{Hash: s.hasher.Value(), Symbol: sym})
		s.hasher.Update(sym, back)
	}
	return records, nil
}

// GetCursor returns a copy of the current window as a string. Returns the
// empty string if the shifter is not yet initialized.
func (s *RollingHashShifter) GetCursor() string {
	if !s.initialized {
		return ""
	}
	return s.win.cursor()
}
