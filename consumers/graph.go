// Copyright 2018, the boink contributors.

package consumers

import (
	"fmt"
	"io"
	"os"

	"github.com/ctb/boink/processing"
)

// GraphConsumer forwards every read to a GraphSink's InsertSequence and
// tallies the k-mers newly inserted across the run. There is no error
// recovery here: a failing insert is fatal and stops the run.
type GraphConsumer struct {
	graph     GraphSink
	nConsumed uint64
	log       io.Writer
}

// NewGraphConsumer binds a consumer to graph. Report lines go to
// os.Stderr; use NewGraphConsumerTo to redirect them.
func NewGraphConsumer(graph GraphSink) *GraphConsumer {
	return NewGraphConsumerTo(graph, os.Stderr)
}

// NewGraphConsumerTo binds a consumer to graph, writing Report lines to
// log.
func NewGraphConsumerTo(graph GraphSink, log io.Writer) *GraphConsumer {
	return &GraphConsumer{graph: graph, log: log}
}

func (c *GraphConsumer) ProcessSequence(read processing.Read) error {
	n, err := c.graph.InsertSequence(read.CleanedSeq)
	if err != nil {
		return err
	}
	c.nConsumed += n
	return nil
}

// Report prints the running count of newly inserted k-mers.
func (c *GraphConsumer) Report() {
	fmt.Fprintf(c.log, "\t and %d new k-mers.\n", c.nConsumed)
}

// NConsumed returns the total k-mers newly inserted across the run.
func (c *GraphConsumer) NConsumed() uint64 { return c.nConsumed }
