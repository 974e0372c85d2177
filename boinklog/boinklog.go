// Copyright 2018, the boink contributors.

// Package boinklog provides the single log factory used across the
// boink commands.
package boinklog

import (
	"log"
	"os"
)

// New opens path for writing and returns a logger over it with a
// time-only prefix.
func New(path string) (*log.Logger, *os.File, error) {
	fid, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return log.New(fid, "", log.Ltime), fid, nil
}
