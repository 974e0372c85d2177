// Copyright 2018, the boink contributors.

package consumers

// GraphSink is the compact de Bruijn graph external collaborator; the
// graph itself lives outside this package and consumers bind to it by
// reference.
type GraphSink interface {
	InsertSequence(seq string) (newKmers uint64, err error)
}

// NeighborBundle names the left/right neighbor hash sets of a decision
// k-mer, as produced by a StreamingCompactor's decision-kmer search.
type NeighborBundle struct {
	Left, Right []uint64
}

// StreamingCompactor is the compact de Bruijn graph's streaming-update
// external collaborator.
type StreamingCompactor interface {
	UpdateSequence(seq string) error
	FindDecisionKmers(seq string) (positions []uint32, hashes []uint64, neighbors []NeighborBundle, err error)
}

// MinHashSink is the MinHash signature store external collaborator.
type MinHashSink interface {
	AddSequence(seq string, force bool) error
}

// UKHSSink is the UKHS (count) signature store external collaborator.
type UKHSSink interface {
	InsertSequence(seq string) error
}
