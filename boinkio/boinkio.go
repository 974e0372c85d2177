// Copyright 2018, the boink contributors.

package boinkio

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// OpenReader opens name for reading, transparently wrapping it in a
// Snappy reader when its name ends in ".sz".
func OpenReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(name, ".sz") {
		return snappyReadCloser{snappy.NewReader(f), f}, nil
	}
	return f, nil
}

type snappyReadCloser struct {
	io.Reader
	f *os.File
}

func (s snappyReadCloser) Close() error { return s.f.Close() }

// CreateWriter creates name for writing, transparently wrapping it in a
// Snappy writer when its name ends in ".sz".
func CreateWriter(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(name, ".sz") {
		return snappyWriteCloser{snappy.NewBufferedWriter(f), f}, nil
	}
	return f, nil
}

type snappyWriteCloser struct {
	*snappy.Writer
	f *os.File
}

func (s snappyWriteCloser) Close() error {
	if err := s.Writer.Close(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
