// Copyright 2018, the boink contributors.

// Package boinkutil holds the ambient utilities shared by the boink
// commands: configuration loading and the FASTQ reader.
package boinkutil

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the run configuration for a boink pipeline invocation.
type Config struct {
	// ReadFileName names the FASTQ file containing the reads.
	ReadFileName string

	// K is the k-mer size used by every component of the run.
	K uint16

	// WindowSize is the number of consecutive k-mers a minimizer window
	// spans, used only when Mode is "minimizer".
	WindowSize int32

	// Mode selects the consumer adapter: "graph", "minhash", "ukhs",
	// "compactor", "decision", or "minimizer".
	Mode string

	// FineInterval, MediumInterval, CoarseInterval override the
	// FileProcessor's default tick periods when nonzero.
	FineInterval   uint64
	MediumInterval uint64
	CoarseInterval uint64

	// OutputFileName is where a consumer's CSV output is written,
	// when the selected Mode produces one. A ".sz" suffix requests
	// Snappy compression (see boinkio).
	OutputFileName string

	// TempDir places working files; cmd/boink's makeTemp creates a
	// uniquely named run directory beneath it (beneath boink_tmp if
	// blank).
	TempDir string

	// LogDir places the run's log file; if blank, a uniquely named
	// directory beneath boink_logs is used.
	LogDir string

	// CompressOutput gzips OutputFileName after the run via an
	// external scipipe process.
	CompressOutput bool

	// MinDinuc, if nonzero, is the minimum number of distinct
	// dinucleotide subsequences a read must contain to be processed;
	// lower-complexity reads are skipped by the FastqReader.
	MinDinuc int
}

// ReadConfig loads a Config from filename, dispatching on extension:
// ".toml" decodes TOML, anything else decodes JSON.
func ReadConfig(filename string) (*Config, error) {
	if strings.HasSuffix(filename, ".toml") {
		config := new(Config)
		if _, err := toml.DecodeFile(filename, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	fid, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	config := new(Config)
	if err := json.NewDecoder(fid).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
