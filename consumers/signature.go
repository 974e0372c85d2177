// Copyright 2018, the boink contributors.

package consumers

import "github.com/ctb/boink/processing"

// MinHashSignatureConsumer forwards every read to a MinHashSink. Report
// is a no-op; there is nothing to report per tick.
type MinHashSignatureConsumer struct {
	sig MinHashSink
}

// NewMinHashSignatureConsumer binds a consumer to sig.
func NewMinHashSignatureConsumer(sig MinHashSink) *MinHashSignatureConsumer {
	return &MinHashSignatureConsumer{sig: sig}
}

func (c *MinHashSignatureConsumer) ProcessSequence(read processing.Read) error {
	return c.sig.AddSequence(read.CleanedSeq, false)
}

func (c *MinHashSignatureConsumer) Report() {}

// UKHSSignatureConsumer forwards every read to a UKHSSink. Report is a
// no-op; there is nothing to report per tick.
type UKHSSignatureConsumer struct {
	sig UKHSSink
}

// NewUKHSSignatureConsumer binds a consumer to sig.
func NewUKHSSignatureConsumer(sig UKHSSink) *UKHSSignatureConsumer {
	return &UKHSSignatureConsumer{sig: sig}
}

func (c *UKHSSignatureConsumer) ProcessSequence(read processing.Read) error {
	return c.sig.InsertSequence(read.CleanedSeq)
}

func (c *UKHSSignatureConsumer) Report() {}
