// Copyright 2018, the boink contributors.

package consumers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ctb/boink/hashing"
	"github.com/ctb/boink/processing"
)

type fakeGraph struct {
	inserted []string
	newKmers uint64
	failErr  error
}

func (g *fakeGraph) InsertSequence(seq string) (uint64, error) {
	if g.failErr != nil {
		return 0, g.failErr
	}
	g.inserted = append(g.inserted, seq)
	return g.newKmers, nil
}

func TestGraphConsumerTalliesAndReports(t *testing.T) {
	g := &fakeGraph{newKmers: 3}
	var log bytes.Buffer
	c := NewGraphConsumerTo(g, &log)

	if err := c.ProcessSequence(processing.Read{CleanedSeq: "ACGT"}); err != nil {
		t.Fatalf("ProcessSequence: %v", err)
	}
	if err := c.ProcessSequence(processing.Read{CleanedSeq: "TTTT"}); err != nil {
		t.Fatalf("ProcessSequence: %v", err)
	}
	if c.NConsumed() != 6 {
		t.Fatalf("NConsumed = %d, want 6", c.NConsumed())
	}
	c.Report()
	if !strings.Contains(log.String(), "6 new k-mers") {
		t.Fatalf("report output = %q, missing expected count", log.String())
	}
}

func TestGraphConsumerPropagatesError(t *testing.T) {
	g := &fakeGraph{failErr: &hashing.InvalidSymbolError{Symbol: 'N'}}
	c := NewGraphConsumer(g)
	if err := c.ProcessSequence(processing.Read{CleanedSeq: "ACGN"}); err == nil {
		t.Fatalf("expected error to propagate, got nil")
	}
}

type fakeCompactor struct {
	updateErr error
	updated   []string
}

func (c *fakeCompactor) UpdateSequence(seq string) error {
	if c.updateErr != nil {
		return c.updateErr
	}
	c.updated = append(c.updated, seq)
	return nil
}

func (c *fakeCompactor) FindDecisionKmers(seq string) ([]uint32, []uint64, []NeighborBundle, error) {
	return nil, nil, nil, nil
}

func TestStreamingCompactorConsumerSkipsInvalidSymbol(t *testing.T) {
	var log bytes.Buffer
	fc := &fakeCompactor{updateErr: &hashing.InvalidSymbolError{Symbol: 'N'}}
	c := NewStreamingCompactorConsumerTo(fc, &log)

	if err := c.ProcessSequence(processing.Read{CleanedSeq: "ACGN"}); err != nil {
		t.Fatalf("expected recovered error (nil), got %v", err)
	}
	if !strings.Contains(log.String(), "WARNING") {
		t.Fatalf("expected a WARNING line, got %q", log.String())
	}
}

func TestStreamingCompactorConsumerSkipsTooShort(t *testing.T) {
	var log bytes.Buffer
	fc := &fakeCompactor{updateErr: &hashing.SequenceTooShortError{K: 4, Have: 2}}
	c := NewStreamingCompactorConsumerTo(fc, &log)

	if err := c.ProcessSequence(processing.Read{CleanedSeq: "AC"}); err != nil {
		t.Fatalf("expected recovered error (nil), got %v", err)
	}
	if !strings.Contains(log.String(), "NOTE") {
		t.Fatalf("expected a NOTE line, got %q", log.String())
	}
}

func TestStreamingCompactorConsumerPropagatesOtherErrors(t *testing.T) {
	var log bytes.Buffer
	fc := &fakeCompactor{updateErr: &hashing.BoinkError{Msg: "disk full"}}
	c := NewStreamingCompactorConsumerTo(fc, &log)

	if err := c.ProcessSequence(processing.Read{CleanedSeq: "ACGT"}); err == nil {
		t.Fatalf("expected unrecovered error to propagate")
	}
}

func TestDecisionNodeConsumerWritesHeader(t *testing.T) {
	var out bytes.Buffer
	g := &fakeGraph{newKmers: 0}
	fc := &fakeCompactor{}
	c, err := NewDecisionNodeConsumer(g, fc, &out)
	if err != nil {
		t.Fatalf("NewDecisionNodeConsumer: %v", err)
	}
	if !strings.Contains(out.String(), "read_n") {
		t.Fatalf("missing header, got %q", out.String())
	}
	if err := c.ProcessSequence(processing.Read{CleanedSeq: "ACGT"}); err != nil {
		t.Fatalf("ProcessSequence: %v", err)
	}
}
