// Copyright 2018, the boink contributors.

package boinkutil

import (
	"bufio"
	"io"
	"strings"

	"github.com/ctb/boink/processing"
)

// FastqReader is a processing.Parser over a 4-line-per-record FASTQ
// stream: line 0 is the read name, line 1 the sequence, lines 2 and 3
// the plus-line and quality string. Each record yields a cleaned,
// uppercased sequence.
type FastqReader struct {
	scanner  *bufio.Scanner
	done     bool
	minDinuc int
	wk       []int
}

// NewFastqReader wraps r, which must yield FASTQ records (4 lines each:
// name, sequence, plus-line, quality).
func NewFastqReader(r io.Reader) *FastqReader {
	return NewFastqReaderFiltered(r, 0)
}

// NewFastqReaderFiltered is NewFastqReader with a low-complexity filter
// attached: any read whose CountDinuc falls below minDinuc is skipped
// rather than yielded. A minDinuc of 0 disables the filter.
func NewFastqReaderFiltered(r io.Reader, minDinuc int) *FastqReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &FastqReader{scanner: scanner, minDinuc: minDinuc, wk: make([]int, 25)}
}

// IsComplete reports whether the stream has been exhausted.
func (r *FastqReader) IsComplete() bool {
	return r.done
}

// GetNextRead reads the next 4-line record and returns its cleaned
// sequence, skipping any record whose complexity falls below the
// configured MinDinuc threshold. Returns processing.NoMoreReadsAvailable
// once the stream is exhausted.
func (r *FastqReader) GetNextRead() (processing.Read, error) {
	for {
		if r.done {
			return processing.Read{}, processing.NoMoreReadsAvailable{}
		}

		var seq string
		for i := 0; i < 4; i++ {
			if !r.scanner.Scan() {
				r.done = true
				if err := r.scanner.Err(); err != nil {
					return processing.Read{}, err
				}
				return processing.Read{}, processing.NoMoreReadsAvailable{}
			}
			if i == 1 {
				seq = r.scanner.Text()
			}
		}

		cleaned := strings.ToUpper(strings.TrimSpace(seq))
		if r.minDinuc > 0 && CountDinuc([]byte(cleaned), r.wk) < r.minDinuc {
			continue
		}
		return processing.Read{CleanedSeq: cleaned}, nil
	}
}
