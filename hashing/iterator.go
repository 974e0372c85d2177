// Copyright 2018, the boink contributors.

package hashing

// iterState is the KmerIterator's lifecycle: Fresh -> Running -> Done.
// There is no path back to an earlier state.
type iterState int

const (
	iterFresh iterState = iota
	iterRunning
	iterDone
)

// KmerIterator is a lazy, single-use cursor over every k-mer of a held
// sequence. Construction only validates length; initialization of the
// underlying Shifter is deferred to the first call to Next.
type KmerIterator struct {
	seq     string
	k       uint16
	shifter Shifter

	// n is the number of k-mers yielded so far.
	n     int
	state iterState
}

// NewKmerIterator builds an iterator over every k-mer of seq using
// shifter, which may already be initialized or not; Next will call
// SetCursor on it on its first invocation either way. Fails with
// SequenceTooShortError if seq is shorter than the shifter's K.
func NewKmerIterator(seq string, shifter Shifter) (*KmerIterator, error) {
	k := int(shifter.K())
	if len(seq) < k {
		return nil, &SequenceTooShortError{K: k, Have: len(seq)}
	}
	return &KmerIterator{seq: seq, k: uint16(k), shifter: shifter, state: iterFresh}, nil
}

// Next advances the iterator and returns the hash of the next k-mer. The
// first call positions the shifter at sequence[0:K]; each subsequent call
// shifts right by exactly one symbol. Fails with PastEndOfIteratorError
// once the iterator is exhausted.
func (it *KmerIterator) Next() (uint64, error) {
	if it.state == iterDone {
		return 0, &PastEndOfIteratorError{}
	}

	var (
		h   uint64
		err error
	)

	if it.state == iterFresh {
		h, err = it.shifter.SetCursor(it.seq[0:it.k])
		if err != nil {
			return 0, err
		}
		it.n = 1
		it.state = iterRunning
	} else {
		h, err = it.shifter.ShiftRight(it.seq[it.n+int(it.k)-1])
		if err != nil {
			return 0, err
		}
		it.n++
	}

	if it.n+int(it.k) > len(it.seq) {
		it.state = iterDone
	}
	return h, nil
}

// Done reports whether the iterator has yielded every k-mer of the
// sequence.
func (it *KmerIterator) Done() bool {
	return it.state == iterDone
}

// StartPos returns the 0-based inclusive start index of the most
// recently yielded k-mer. Zero before the first call to Next.
func (it *KmerIterator) StartPos() int {
	if it.state == iterFresh {
		return 0
	}
	return it.n - 1
}

// EndPos returns the 0-based exclusive end index of the most recently
// yielded k-mer. K before the first call to Next.
func (it *KmerIterator) EndPos() int {
	if it.state == iterFresh {
		return int(it.k)
	}
	return it.n + int(it.k) - 1
}

// Shifter returns the underlying Shifter the iterator drives.
func (it *KmerIterator) Shifter() Shifter {
	return it.shifter
}
