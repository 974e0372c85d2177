// Copyright 2018, the boink contributors.

package boinkutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctb/boink/processing"
)

func TestFastqReaderYieldsCleanedSequences(t *testing.T) {
	data := "@r1\nacgtACGT\n+\nIIIIIIII\n@r2\nTTTTGGGG\n+\nIIIIIIII\n"
	r := NewFastqReader(strings.NewReader(data))

	var seqs []string
	for !r.IsComplete() {
		read, err := r.GetNextRead()
		if err != nil {
			if _, ok := err.(processing.NoMoreReadsAvailable); ok {
				break
			}
			t.Fatalf("GetNextRead: %v", err)
		}
		seqs = append(seqs, read.CleanedSeq)
	}

	want := []string{"ACGTACGT", "TTTTGGGG"}
	if len(seqs) != len(want) {
		t.Fatalf("got %d reads, want %d", len(seqs), len(want))
	}
	for i, s := range want {
		if seqs[i] != s {
			t.Fatalf("read %d = %q, want %q", i, seqs[i], s)
		}
	}
}

func TestFastqReaderFiltersLowComplexity(t *testing.T) {
	data := "@r1\nAAAAAAAAAAAAAAAA\n+\nIIIIIIIIIIIIIIII\n@r2\nACGTGCATACGTGCAT\n+\nIIIIIIIIIIIIIIII\n"
	r := NewFastqReaderFiltered(strings.NewReader(data), 5)

	var seqs []string
	for !r.IsComplete() {
		read, err := r.GetNextRead()
		if err != nil {
			if _, ok := err.(processing.NoMoreReadsAvailable); ok {
				break
			}
			t.Fatalf("GetNextRead: %v", err)
		}
		seqs = append(seqs, read.CleanedSeq)
	}

	if len(seqs) != 1 || seqs[0] != "ACGTGCATACGTGCAT" {
		t.Fatalf("filtered reads = %v, want only the high-complexity read", seqs)
	}
}

func TestReadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"ReadFileName":"reads.fastq","K":21,"Mode":"graph"}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.K != 21 || cfg.Mode != "graph" {
		t.Fatalf("cfg = %+v, want K=21 Mode=graph", cfg)
	}
}

func TestReadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "ReadFileName = \"reads.fastq\"\nK = 25\nMode = \"minimizer\"\nWindowSize = 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.K != 25 || cfg.Mode != "minimizer" || cfg.WindowSize != 10 {
		t.Fatalf("cfg = %+v, want K=25 Mode=minimizer WindowSize=10", cfg)
	}
}
