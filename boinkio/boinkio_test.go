// Copyright 2018, the boink contributors.

package boinkio

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
)

func TestPlainRoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.csv")

	w, err := CreateWriter(name)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	if _, err := w.Write([]byte("hello\nworld\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenReader(name)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("lines = %v, want [hello world]", lines)
	}
}

func TestSnappyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.csv.sz")

	w, err := CreateWriter(name)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	if _, err := w.Write([]byte("compressed line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("snappy output file is empty")
	}

	r, err := OpenReader(name)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		t.Fatalf("expected at least one line")
	}
	if scanner.Text() != "compressed line" {
		t.Fatalf("got %q, want %q", scanner.Text(), "compressed line")
	}
}
