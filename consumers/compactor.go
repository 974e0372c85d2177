// Copyright 2018, the boink contributors.

package consumers

import (
	"fmt"
	"io"
	"os"

	"github.com/ctb/boink/hashing"
	"github.com/ctb/boink/processing"
)

// StreamingCompactorConsumer forwards every read to a
// StreamingCompactor's UpdateSequence, recovering from the two expected
// per-read failure kinds (bad symbol, too-short sequence) by logging and
// skipping the read. Every other error propagates and is fatal.
type StreamingCompactorConsumer struct {
	compactor StreamingCompactor
	nReads    uint64
	log       io.Writer
}

// NewStreamingCompactorConsumer binds a consumer to compactor. Warning
// lines go to os.Stderr; use NewStreamingCompactorConsumerTo to
// redirect them.
func NewStreamingCompactorConsumer(compactor StreamingCompactor) *StreamingCompactorConsumer {
	return NewStreamingCompactorConsumerTo(compactor, os.Stderr)
}

// NewStreamingCompactorConsumerTo binds a consumer to compactor, writing
// warning lines to log.
func NewStreamingCompactorConsumerTo(compactor StreamingCompactor, log io.Writer) *StreamingCompactorConsumer {
	return &StreamingCompactorConsumer{compactor: compactor, log: log}
}

func (c *StreamingCompactorConsumer) ProcessSequence(read processing.Read) error {
	n := c.nReads
	c.nReads++

	err := c.compactor.UpdateSequence(read.CleanedSeq)
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *hashing.InvalidSymbolError:
		fmt.Fprintf(c.log, "WARNING: bad sequence encountered at %d: %s, exception was %v\n", n, read.CleanedSeq, e)
		return nil
	case *hashing.SequenceTooShortError:
		fmt.Fprintf(c.log, "NOTE: skipped sequence that was too short: read %d with sequence %s\n", n, read.CleanedSeq)
		return nil
	default:
		fmt.Fprintf(c.log, "ERROR: exception thrown at %d with msg: %v\n", n, err)
		return err
	}
}

func (c *StreamingCompactorConsumer) Report() {}
