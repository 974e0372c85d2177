// Copyright 2018, the boink contributors.

// boink drives a single-file k-mer processing run: it reads a FASTQ
// file, feeds every read through a rolling-hash k-mer pipeline, and
// writes whatever output its selected mode produces.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/scipipe/scipipe"

	"github.com/ctb/boink/alphabet"
	"github.com/ctb/boink/boinkio"
	"github.com/ctb/boink/boinklog"
	"github.com/ctb/boink/boinkref"
	"github.com/ctb/boink/boinkutil"
	"github.com/ctb/boink/consumers"
	"github.com/ctb/boink/events"
	"github.com/ctb/boink/minimizer"
	"github.com/ctb/boink/processing"
)

var (
	config     *boinkutil.Config
	logger     *log.Logger
	cpuProfile bool
)

func handleArgs() {
	configFileName := flag.String("ConfigFileName", "", "JSON or TOML file containing configuration parameters")
	readFileName := flag.String("ReadFileName", "", "Sequencing read file (fastq format)")
	k := flag.Int("K", 0, "k-mer size")
	windowSize := flag.Int("WindowSize", 0, "minimizer window size, in k-mers")
	mode := flag.String("Mode", "", "consumer mode: graph, minhash, ukhs, compactor, decision, minimizer")
	outputFileName := flag.String("OutputFileName", "", "output file name (CSV); a .sz suffix requests Snappy compression")
	tempDir := flag.String("TempDir", "", "workspace for temporary files")
	minDinuc := flag.Int("MinDinuc", 0, "minimum distinct dinucleotides required to process a read")
	cpuProfileFlag := flag.Bool("CPUProfile", false, "write a CPU profile to the current directory")
	compressOutput := flag.Bool("CompressOutput", false, "gzip the output file after the run completes")

	flag.Parse()

	if *configFileName != "" {
		c, err := boinkutil.ReadConfig(*configFileName)
		if err != nil {
			panic(err)
		}
		config = c
	} else {
		config = new(boinkutil.Config)
	}

	if *readFileName != "" {
		config.ReadFileName = *readFileName
	}
	if *k != 0 {
		config.K = uint16(*k)
	}
	if *windowSize != 0 {
		config.WindowSize = int32(*windowSize)
	}
	if *mode != "" {
		config.Mode = *mode
	}
	if *outputFileName != "" {
		config.OutputFileName = *outputFileName
	}
	if *tempDir != "" {
		config.TempDir = *tempDir
	}
	if *minDinuc != 0 {
		config.MinDinuc = *minDinuc
	}
	if *compressOutput {
		config.CompressOutput = true
	}

	cpuProfile = *cpuProfileFlag
}

func checkArgs() {
	if config.ReadFileName == "" {
		panic("ReadFileName is required")
	}
	if config.K == 0 {
		panic("K is required")
	}
	switch config.Mode {
	case "graph", "minhash", "ukhs", "compactor", "decision", "minimizer":
	default:
		panic(fmt.Sprintf("unrecognized Mode %q", config.Mode))
	}
	if config.Mode == "minimizer" && config.WindowSize == 0 {
		panic("WindowSize is required for Mode=minimizer")
	}
	if (config.Mode == "minimizer" || config.Mode == "decision") && config.OutputFileName == "" {
		panic(fmt.Sprintf("OutputFileName is required for Mode=%s", config.Mode))
	}
}

// makeTemp sets up uniquely named run directories for temporary files
// and logs, and returns the run id.
func makeTemp() string {
	uid := uuid.New().String()

	if config.TempDir == "" {
		config.TempDir = path.Join("boink_tmp", uid)
	} else {
		config.TempDir = path.Join(config.TempDir, uid)
	}
	if err := os.MkdirAll(config.TempDir, 0755); err != nil {
		panic(err)
	}

	if config.LogDir == "" {
		config.LogDir = path.Join("boink_logs", uid)
	}
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		panic(err)
	}
	return uid
}

func saveConfig() {
	fid, err := os.Create(path.Join(config.LogDir, "config.json"))
	if err != nil {
		panic(err)
	}
	defer fid.Close()
	if err := json.NewEncoder(fid).Encode(config); err != nil {
		panic(err)
	}
}

func buildConsumer(out io.Writer) (processing.Consumer, error) {
	switch config.Mode {
	case "graph":
		graph := boinkref.NewBloomGraph(config.K, alphabet.DNA, 1_000_000, 0.01)
		return consumers.NewGraphConsumer(graph), nil
	case "minhash":
		sig := boinkref.NewMinHashSignature(16, int(config.K))
		return consumers.NewMinHashSignatureConsumer(sig), nil
	case "ukhs":
		sig := boinkref.NewUKHSSignature(config.K, alphabet.DNA, 1<<24)
		return consumers.NewUKHSSignatureConsumer(sig), nil
	case "compactor":
		graph := boinkref.NewBloomGraph(config.K, alphabet.DNA, 1_000_000, 0.01)
		return consumers.NewStreamingCompactorConsumer(graph), nil
	case "decision":
		graph := boinkref.NewBloomGraph(config.K, alphabet.DNA, 1_000_000, 0.01)
		return consumers.NewDecisionNodeConsumer(graph, graph, out)
	case "minimizer":
		m := minimizer.New(config.WindowSize, config.K, alphabet.DNA)
		return consumers.NewMinimizerConsumer(m, out), nil
	default:
		return nil, fmt.Errorf("unrecognized Mode %q", config.Mode)
	}
}

// compressOutput writes a gzipped copy of name to name+".gz" via an
// external scipipe workflow: one proc, a static output path, and a
// driver run to completion. The original file is left in place.
func compressOutput(name string) error {
	wf := scipipe.NewWorkflow("compress_output", 1)

	gz := wf.NewProc("gz", fmt.Sprintf("gzip -c %s > {os:gz}", name))
	gz.SetPathStatic("gz", name+".gz")

	wf.AddProcs(gz)
	wf.SetDriver(gz)
	wf.Run()
	return nil
}

func run() error {
	reads, err := os.Open(config.ReadFileName)
	if err != nil {
		return err
	}
	defer reads.Close()
	parser := boinkutil.NewFastqReaderFiltered(reads, config.MinDinuc)

	var out io.Writer
	if config.OutputFileName != "" {
		w, err := boinkio.CreateWriter(config.OutputFileName)
		if err != nil {
			return err
		}
		out = w
		defer w.Close()
	}

	consumer, err := buildConsumer(out)
	if err != nil {
		return err
	}

	fine, medium, coarse := uint64(processing.DefaultFineInterval), uint64(processing.DefaultMediumInterval), uint64(processing.DefaultCoarseInterval)
	if config.FineInterval != 0 {
		fine = config.FineInterval
	}
	if config.MediumInterval != 0 {
		medium = config.MediumInterval
	}
	if config.CoarseInterval != 0 {
		coarse = config.CoarseInterval
	}

	p := processing.NewFileProcessor[processing.Consumer](consumer, fine, medium, coarse)
	p.RegisterListener(func(e events.TimeIntervalEvent) {
		logger.Printf("tick %s at %d reads", e.Level, e.T)
	})

	n, err := p.Process(parser)
	if err != nil {
		return err
	}
	logger.Printf("processed %d reads", n)

	if config.CompressOutput && config.OutputFileName != "" {
		// Close (and so flush) the output before gzip reads it; the
		// deferred Close above then has nothing left to write.
		if err := out.(io.Closer).Close(); err != nil {
			return err
		}
		if err := compressOutput(config.OutputFileName); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	handleArgs()
	checkArgs()
	makeTemp()
	saveConfig()

	l, fid, err := boinklog.New(path.Join(config.LogDir, "boink.log"))
	if err != nil {
		panic(err)
	}
	logger = l
	defer fid.Close()

	logger.Printf("storing temporary files in %s", config.TempDir)
	logger.Printf("storing log files in %s", config.LogDir)

	if cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(); err != nil {
		logger.Printf("ERROR: %v", err)
		os.Exit(1)
	}
	logger.Printf("all done")
}
