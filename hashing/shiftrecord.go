// Copyright 2018, the boink contributors.

package hashing

// ShiftRecord names the hash that would result from extending the window
// by Symbol on a specified side, without the window itself having been
// mutated to produce it. See Shifter.GatherRight/GatherLeft.
type ShiftRecord struct {
	Hash   uint64
	Symbol byte
}
