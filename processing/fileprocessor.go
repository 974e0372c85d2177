// Copyright 2018, the boink contributors.

package processing

import "github.com/ctb/boink/events"

// Default tick periods, in reads processed.
const (
	DefaultFineInterval   = 10000
	DefaultMediumInterval = 100000
	DefaultCoarseInterval = 1000000
)

// IntervalState reports which tick levels fired on the most recent call
// to Advance/AdvancePaired.
type IntervalState struct {
	Fine, Medium, Coarse, End bool
}

// Ticked reports whether any level fired.
func (s IntervalState) Ticked() bool {
	return s.Fine || s.Medium || s.Coarse || s.End
}

// FileProcessor is the generic pipeline driver: it drains a Parser,
// forwards every read to a Consumer, and emits tick events at
// configurable intervals. C is fixed for the lifetime of one processor.
type FileProcessor[C Consumer] struct {
	consumer C
	notifier *events.Notifier

	counters [3]*events.IntervalCounter

	// nReads is a plain, non-atomic counter: the processor runs on a
	// single goroutine, so no atomic increment is used.
	nReads uint64
}

// NewFileProcessor builds a processor around consumer with the given
// tick periods (fine, medium, coarse).
func NewFileProcessor[C Consumer](consumer C, fineInterval, mediumInterval, coarseInterval uint64) *FileProcessor[C] {
	return &FileProcessor[C]{
		consumer: consumer,
		notifier: events.NewNotifier(),
		counters: [3]*events.IntervalCounter{
			events.NewIntervalCounter(fineInterval),
			events.NewIntervalCounter(mediumInterval),
			events.NewIntervalCounter(coarseInterval),
		},
	}
}

// NewDefaultFileProcessor builds a processor at the default tick
// periods.
func NewDefaultFileProcessor[C Consumer](consumer C) *FileProcessor[C] {
	return NewFileProcessor[C](consumer, DefaultFineInterval, DefaultMediumInterval, DefaultCoarseInterval)
}

// RegisterListener subscribes l to every tick event this processor
// emits, in registration order.
func (p *FileProcessor[C]) RegisterListener(l events.Listener) {
	p.notifier.RegisterListener(l)
}

// NReads returns the number of reads processed so far.
func (p *FileProcessor[C]) NReads() uint64 {
	return p.nReads
}

// Consumer returns the processor's bound consumer.
func (p *FileProcessor[C]) Consumer() C {
	return p.consumer
}

func (p *FileProcessor[C]) notifyTick(nTicks uint64) IntervalState {
	var state IntervalState

	if p.counters[0].Poll(nTicks) {
		p.consumer.Report()
		p.notifier.Notify(events.TimeIntervalEvent{Level: events.Fine, T: p.nReads})
		state.Fine = true
	}
	if p.counters[1].Poll(nTicks) {
		p.notifier.Notify(events.TimeIntervalEvent{Level: events.Medium, T: p.nReads})
		state.Medium = true
	}
	if p.counters[2].Poll(nTicks) {
		p.notifier.Notify(events.TimeIntervalEvent{Level: events.Coarse, T: p.nReads})
		state.Coarse = true
	}
	return state
}

func (p *FileProcessor[C]) notifyStop() {
	p.notifier.Notify(events.TimeIntervalEvent{Level: events.End, T: p.nReads})
}

// Advance pulls and processes exactly one read from parser, reporting
// which tick levels fired. If the parser is already complete (or signals
// no more reads), Advance emits an END event and returns
// {End: true} without consuming anything further.
//
// If the consumer returns an error, Advance propagates it immediately
// without incrementing the read counter or emitting any tick for that
// read.
func (p *FileProcessor[C]) Advance(parser Parser) (IntervalState, error) {
	if parser.IsComplete() {
		p.notifyStop()
		return IntervalState{End: true}, nil
	}

	read, err := parser.GetNextRead()
	if err != nil {
		if _, ok := err.(NoMoreReadsAvailable); ok {
			p.notifyStop()
			return IntervalState{End: true}, nil
		}
		return IntervalState{}, err
	}

	if err := p.consumer.ProcessSequence(read); err != nil {
		return IntervalState{}, err
	}

	p.nReads++
	return p.notifyTick(1), nil
}

// AdvancePaired is the paired-end analog of Advance: whichever halves of
// the bundle are present are forwarded to the consumer, and the read
// counter advances by the number of halves actually processed.
func (p *FileProcessor[C]) AdvancePaired(reader PairedParser) (IntervalState, error) {
	if reader.IsComplete() {
		p.notifyStop()
		return IntervalState{End: true}, nil
	}

	bundle, err := reader.Next()
	if err != nil {
		return IntervalState{}, err
	}

	if bundle.HasLeft {
		if err := p.consumer.ProcessSequence(bundle.Left); err != nil {
			return IntervalState{}, err
		}
	}
	if bundle.HasRight {
		if err := p.consumer.ProcessSequence(bundle.Right); err != nil {
			return IntervalState{}, err
		}
	}

	count := uint64(bundle.Count())
	p.nReads += count
	return p.notifyTick(count), nil
}

// Process drives Advance until the parser is exhausted, returning the
// total number of reads processed.
func (p *FileProcessor[C]) Process(parser Parser) (uint64, error) {
	for {
		state, err := p.Advance(parser)
		if err != nil {
			return p.nReads, err
		}
		if state.End {
			break
		}
	}
	return p.nReads, nil
}

// ProcessPaired is the paired-end analog of Process.
func (p *FileProcessor[C]) ProcessPaired(reader PairedParser) (uint64, error) {
	for {
		state, err := p.AdvancePaired(reader)
		if err != nil {
			return p.nReads, err
		}
		if state.End {
			break
		}
	}
	return p.nReads, nil
}
