// Copyright 2018, the boink contributors.

package consumers

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ctb/boink/processing"
)

// DecisionNodeConsumer inserts every read into a graph, and for any read
// that introduces new k-mers, asks the compactor for decision k-mers and
// writes one CSV row per decision found.
type DecisionNodeConsumer struct {
	graph     GraphSink
	compactor StreamingCompactor
	w         *csv.Writer
	nReads    uint64
}

// NewDecisionNodeConsumer binds a consumer to graph and compactor,
// writing its header row and subsequent rows to w. w is flushed after
// every ProcessSequence call; callers are responsible for closing the
// underlying writer.
func NewDecisionNodeConsumer(graph GraphSink, compactor StreamingCompactor, w io.Writer) (*DecisionNodeConsumer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"read_n", " l_degree", " r_degree", " position", " hash"}); err != nil {
		return nil, err
	}
	cw.Flush()
	return &DecisionNodeConsumer{graph: graph, compactor: compactor, w: cw}, nil
}

func (c *DecisionNodeConsumer) ProcessSequence(read processing.Read) error {
	n := c.nReads
	c.nReads++

	nNew, err := c.graph.InsertSequence(read.CleanedSeq)
	if err != nil {
		return err
	}
	if nNew == 0 {
		return nil
	}

	positions, hashes, neighbors, err := c.compactor.FindDecisionKmers(read.CleanedSeq)
	if err != nil {
		return err
	}

	for i := range positions {
		row := []string{
			strconv.FormatUint(n, 10),
			" " + strconv.Itoa(len(neighbors[i].Left)),
			" " + strconv.Itoa(len(neighbors[i].Right)),
			" " + strconv.FormatUint(uint64(positions[i]), 10),
			" " + strconv.FormatUint(hashes[i], 10),
		}
		if err := c.w.Write(row); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *DecisionNodeConsumer) Report() {}
