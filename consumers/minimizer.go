// Copyright 2018, the boink contributors.

package consumers

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ctb/boink/minimizer"
	"github.com/ctb/boink/processing"
)

// MinimizerConsumer runs a windowed-k-minimizer scan over every read and
// writes a header-less CSV row `(read_n, pos, hash, substring)` per
// minimizer found.
type MinimizerConsumer struct {
	m      *minimizer.WKMinimizer
	w      *csv.Writer
	nReads uint64
}

// NewMinimizerConsumer binds a consumer to m, writing rows to w. w is
// flushed after every ProcessSequence call; callers are responsible for
// closing the underlying writer.
func NewMinimizerConsumer(m *minimizer.WKMinimizer, w io.Writer) *MinimizerConsumer {
	return &MinimizerConsumer{m: m, w: csv.NewWriter(w)}
}

func (c *MinimizerConsumer) ProcessSequence(read processing.Read) error {
	n := c.nReads
	c.nReads++

	records, err := c.m.GetMinimizers(read.CleanedSeq)
	if err != nil {
		return err
	}

	k := int(c.m.K())
	for _, rec := range records {
		row := []string{
			strconv.FormatUint(n, 10),
			strconv.FormatUint(uint64(rec.Pos), 10),
			strconv.FormatUint(rec.Hash, 10),
			read.CleanedSeq[rec.Pos : int(rec.Pos)+k],
		}
		if err := c.w.Write(row); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *MinimizerConsumer) Report() {}
