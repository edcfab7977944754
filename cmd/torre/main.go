// The torre command runs the interactive component assembly organizer,
// or, with -analyze, measures the comparison counts of its sorts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/exascience/torre/analysis"
	"github.com/exascience/torre/internal/log"
	"github.com/exascience/torre/internal/metrics"
	"github.com/exascience/torre/internal/seed"
	"github.com/exascience/torre/internal/session"
)

// exitInterrupted is the exit status after an interrupt signal.
const exitInterrupted = 130

// Flags holds the command line configuration.
type Flags struct {
	Seed            string
	Analyze         bool
	Trials          int
	Batches         int
	RandomSeed      int64
	MetricsTextfile string
	Verbose         bool
}

func parseFlags(args []string) (*Flags, error) {
	defaults := analysis.DefaultConfig()
	fs := flag.NewFlagSet("torre", flag.ContinueOnError)
	seedFile := fs.String("seed", "", "Path of a YAML or TOML file with components to register at startup")
	analyze := fs.Bool("analyze", false, "Measure the comparison counts of the sorts over random inventories instead of starting the menu")
	trials := fs.Int("trials", defaults.Trials, "Number of random inventories sorted per key and size with -analyze")
	batches := fs.Int("batches", defaults.Batches, "Number of concurrent batches the trials are split into with -analyze (0 picks a default)")
	randomSeed := fs.Int64("random-seed", defaults.Seed, "Seed of the random inventories generated with -analyze")
	metricsTextfile := fs.String("metrics-textfile", "", "Write the comparison metrics of the session to this file on exit, in Prometheus text format")
	verbose := fs.Bool("verbose", false, "Enable this to print debug logs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	flags := &Flags{
		Seed:            *seedFile,
		Analyze:         *analyze,
		Trials:          *trials,
		Batches:         *batches,
		RandomSeed:      *randomSeed,
		MetricsTextfile: *metricsTextfile,
		Verbose:         *verbose,
	}
	if err := validateFlags(flags); err != nil {
		return nil, err
	}
	return flags, nil
}

func validateFlags(flags *Flags) error {
	if flags.Analyze && flags.Seed != "" {
		return errors.New("-seed cannot be combined with -analyze")
	}
	if flags.Analyze && flags.MetricsTextfile != "" {
		return errors.New("-metrics-textfile cannot be combined with -analyze")
	}
	return flags.analysisConfig().Validate()
}

func (flags *Flags) analysisConfig() analysis.Config {
	cfg := analysis.DefaultConfig()
	cfg.Trials = flags.Trials
	cfg.Batches = flags.Batches
	cfg.Seed = flags.RandomSeed
	return cfg
}

func run(ctx context.Context, flags *Flags) error {
	if flags.Analyze {
		summaries, err := analysis.Run(ctx, flags.analysisConfig())
		if err != nil {
			return err
		}
		session.RenderSummaries(os.Stdout, summaries)
		return nil
	}

	reg := prometheus.NewRegistry()
	s := session.New(os.Stdin, os.Stdout, metrics.NewRecorder(reg))
	if flags.Seed != "" {
		components, err := seed.Load(flags.Seed)
		if err != nil {
			return err
		}
		if err := s.Preload(components); err != nil {
			return fmt.Errorf("seed file %s: %w", flags.Seed, err)
		}
	}
	err := s.Run(ctx)
	if flags.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(flags.MetricsTextfile, reg); werr != nil {
			log.Errorf("Failed to write metrics to %s: %v", flags.MetricsTextfile, werr)
		}
	}
	return err
}

func main() {
	os.Exit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	flags, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error parsing CLI args: %v\n", err)
		return 2
	}

	logger, err := log.New(flags.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer logger.Sync()
	log.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, flags)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		log.Errorf("torre: %v", err)
		return 1
	}
}
