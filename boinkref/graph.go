// Copyright 2018, the boink contributors.

package boinkref

import (
	"encoding/binary"
	"math/rand"

	"github.com/golang-collections/go-datastructures/bitarray"
	"github.com/willf/bloom"

	"github.com/ctb/boink/alphabet"
	"github.com/ctb/boink/consumers"
	"github.com/ctb/boink/hashing"
)

// BloomGraph is a reference consumers.GraphSink / consumers.StreamingCompactor
// implementation: a sketch of a compact de Bruijn graph backed by a Bloom
// filter for k-mer membership and exact adjacency maps for neighbor
// bookkeeping. It exists for tests and the demo CLI, not as a production
// graph.
type BloomGraph struct {
	k        uint16
	alphabet alphabet.Alphabet

	seen *bloom.BloomFilter

	// decisionBits marks, approximately, which hash buckets have ever
	// qualified as a decision k-mer; sampled by DecisionDensity to
	// estimate the sketch's fill rate.
	decisionBits     bitarray.BitArray
	decisionBitsSize uint64

	left, right map[uint64]map[uint64]bool
}

// NewBloomGraph builds a graph sized for approximately expectedKmers
// distinct k-mers at the given false positive rate.
func NewBloomGraph(k uint16, a alphabet.Alphabet, expectedKmers uint, falsePositiveRate float64) *BloomGraph {
	m, nHash := bloom.EstimateParameters(expectedKmers, falsePositiveRate)
	size := uint64(expectedKmers) * 4
	if size == 0 {
		size = 1024
	}
	return &BloomGraph{
		k:                k,
		alphabet:         a,
		seen:             bloom.New(m, nHash),
		decisionBits:     bitarray.NewBitArray(size),
		decisionBitsSize: size,
		left:             make(map[uint64]map[uint64]bool),
		right:            make(map[uint64]map[uint64]bool),
	}
}

func kmerKey(h uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return b
}

// InsertSequence hashes every k-mer of seq, tallies the ones not already
// present in the Bloom sketch, and records the sequence's adjacency into
// the exact neighbor maps used by FindDecisionKmers. The tally is
// approximate: false positives in the filter undercount novelty.
func (g *BloomGraph) InsertSequence(seq string) (uint64, error) {
	hashes, err := g.kmerHashes(seq)
	if err != nil {
		return 0, err
	}

	var newCount uint64
	for _, h := range hashes {
		key := kmerKey(h)
		if !g.seen.Test(key) {
			g.seen.Add(key)
			newCount++
		}
	}
	g.recordEdges(hashes)
	return newCount, nil
}

// UpdateSequence is InsertSequence's StreamingCompactor-facing form:
// same work, error-only return.
func (g *BloomGraph) UpdateSequence(seq string) error {
	_, err := g.InsertSequence(seq)
	return err
}

func (g *BloomGraph) kmerHashes(seq string) ([]uint64, error) {
	shifter := hashing.NewRollingHashShifter(g.k, g.alphabet)
	it, err := hashing.NewKmerIterator(seq, shifter)
	if err != nil {
		return nil, err
	}
	var hashes []uint64
	for !it.Done() {
		h, err := it.Next()
		if err != nil {
			return hashes, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

func (g *BloomGraph) recordEdges(hashes []uint64) {
	for i := 1; i < len(hashes); i++ {
		prev, cur := hashes[i-1], hashes[i]
		if g.left[cur] == nil {
			g.left[cur] = make(map[uint64]bool)
		}
		g.left[cur][prev] = true
		if g.right[prev] == nil {
			g.right[prev] = make(map[uint64]bool)
		}
		g.right[prev][cur] = true
	}
}

func (g *BloomGraph) bucket(h uint64) uint64 {
	return h % g.decisionBitsSize
}

// FindDecisionKmers walks seq's k-mers and reports every one whose
// combined left+right neighbor count exceeds 2, the condition for a
// de Bruijn graph decision node.
func (g *BloomGraph) FindDecisionKmers(seq string) ([]uint32, []uint64, []consumers.NeighborBundle, error) {
	shifter := hashing.NewRollingHashShifter(g.k, g.alphabet)
	it, err := hashing.NewKmerIterator(seq, shifter)
	if err != nil {
		return nil, nil, nil, err
	}

	var positions []uint32
	var hashes []uint64
	var neighbors []consumers.NeighborBundle

	for !it.Done() {
		h, err := it.Next()
		if err != nil {
			return positions, hashes, neighbors, err
		}
		left := g.left[h]
		right := g.right[h]
		if len(left)+len(right) <= 2 {
			continue
		}
		g.decisionBits.SetBit(g.bucket(h))

		positions = append(positions, uint32(it.StartPos()))
		hashes = append(hashes, h)
		neighbors = append(neighbors, consumers.NeighborBundle{
			Left:  keys(left),
			Right: keys(right),
		})
	}
	return positions, hashes, neighbors, nil
}

func keys(m map[uint64]bool) []uint64 {
	out := make([]uint64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// DecisionDensity samples n random buckets of the decision-bit sketch
// and returns the observed fraction set.
func (g *BloomGraph) DecisionDensity(n int) float64 {
	if n <= 0 {
		n = 1000
	}
	var c int
	for i := 0; i < n; i++ {
		idx := uint64(rand.Int63()) % g.decisionBitsSize
		if set, _ := g.decisionBits.GetBit(idx); set {
			c++
		}
	}
	return float64(c) / float64(n)
}
