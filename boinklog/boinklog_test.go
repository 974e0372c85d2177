// Copyright 2018, the boink contributors.

package boinklog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")

	logger, fid, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Print("hello")
	fid.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected at least one log line")
	}
	if !strings.Contains(scanner.Text(), "hello") {
		t.Fatalf("log line = %q, missing message", scanner.Text())
	}
}
