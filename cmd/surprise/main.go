package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dd0wney/cluso-surprise/pkg/algorithms"
	"github.com/dd0wney/cluso-surprise/pkg/config"
	"github.com/dd0wney/cluso-surprise/pkg/graph"
	"github.com/dd0wney/cluso-surprise/pkg/logging"
	"github.com/dd0wney/cluso-surprise/pkg/metrics"
	"github.com/dd0wney/cluso-surprise/pkg/report"
	"github.com/dd0wney/cluso-surprise/pkg/scoring"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// options are the parsed command line flags.
type options struct {
	F, M, N, P  int64
	graphFile   string
	partitions  []string
	configFile  string
	workers     int
	logLevel    string
	metricsFile string
	algorithms  string
	plain       bool
	set         map[string]bool // Flags given explicitly
}

// partitionFlags collects repeated -partition values.
type partitionFlags []string

func (p *partitionFlags) String() string { return strings.Join(*p, ",") }

func (p *partitionFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{set: make(map[string]bool)}
	var partitions partitionFlags

	fs.Int64Var(&opts.F, "F", -1, "Node pairs in the network")
	fs.Int64Var(&opts.M, "M", -1, "Intra-community node pairs")
	fs.Int64Var(&opts.N, "n", -1, "Edges in the network")
	fs.Int64Var(&opts.P, "p", -1, "Intra-community edges")
	fs.StringVar(&opts.graphFile, "graph", "", "Edge list file, one \"a b\" pair per line (.sz for snappy)")
	fs.Var(&partitions, "partition", "Partition file, one \"node community\" pair per line (repeatable)")
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&opts.workers, "workers", 0, "Partitions scored in parallel")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	fs.StringVar(&opts.algorithms, "algorithms", "", "Comma-separated baseline algorithms to score")
	fs.BoolVar(&opts.plain, "plain", false, "Plain text output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	opts.partitions = partitions

	statsGiven := opts.set["F"] || opts.set["M"] || opts.set["n"] || opts.set["p"]
	switch {
	case statsGiven && opts.graphFile != "":
		return nil, errors.New("use either -F/-M/-n/-p or -graph, not both")
	case statsGiven && !(opts.set["F"] && opts.set["M"] && opts.set["n"] && opts.set["p"]):
		return nil, errors.New("-F, -M, -n and -p must all be given")
	case !statsGiven && opts.graphFile == "":
		return nil, errors.New("either -F/-M/-n/-p or -graph is required")
	case len(opts.partitions) > 0 && opts.graphFile == "":
		return nil, errors.New("-partition requires -graph")
	}

	return opts, nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}

	if opts.set["workers"] {
		cfg.Workers = opts.workers
	}
	if opts.set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if opts.set["metrics-file"] {
		cfg.MetricsFile = opts.metricsFile
	}
	if opts.set["algorithms"] {
		cfg.Algorithms = nil
		for _, a := range strings.Split(opts.algorithms, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Algorithms = append(cfg.Algorithms, a)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("surprise", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: surprise -F n -M n -n n -p n\n       surprise -graph edges.txt [-partition part.txt ...]\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nBaseline algorithms: %s\n", strings.Join(algorithms.Algorithms, ", "))
	}

	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)
	registry := metrics.NewRegistry()
	scorer := scoring.NewScorer(logger, registry, cfg.Workers)
	renderOpts := report.Options{Plain: opts.plain}

	if cfg.MetricsFile != "" {
		defer func() {
			if err := registry.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Error("failed to write metrics", logging.Path(cfg.MetricsFile), logging.Error(err))
			}
		}()
	}

	if opts.graphFile == "" {
		stats := surprise.Stats{F: opts.F, M: opts.M, N: opts.N, P: opts.P}
		result, err := scorer.Score(ctx, "cli", stats)
		if err != nil {
			return err
		}
		return report.Result(stdout, result, renderOpts)
	}

	g, summary, err := graph.ReadEdgeListFile(opts.graphFile)
	if err != nil {
		return err
	}
	registry.RecordGraph(g.NodeCount(), g.EdgeCount(), summary.SelfLoops, summary.Duplicates)
	logger.Info("graph loaded",
		logging.Path(opts.graphFile),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("self_loops", summary.SelfLoops),
		logging.Int("duplicates", summary.Duplicates),
		logging.Float64("clustering", algorithms.AverageClusteringCoefficient(g)))

	candidates, err := scoring.Detect(g, cfg.Algorithms, cfg.LabelPropagation.MaxIterations)
	if err != nil {
		return err
	}
	for _, path := range opts.partitions {
		part, err := graph.ReadPartitionFile(path, g)
		if err != nil {
			return err
		}
		given, err := algorithms.FromPartition(g, partitionName(path), part)
		if err != nil {
			return err
		}
		logger.Info("partition loaded",
			logging.Path(path),
			logging.Partition(given.Algorithm),
			logging.Count(len(given.Communities)),
			logging.Float64("modularity", given.Modularity))
		candidates = append(candidates, scoring.Candidate{Name: given.Algorithm, Partition: given.Partition})
	}

	result, err := scorer.ScoreAll(ctx, g, candidates)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Surprise of %s (%d nodes, %d edges)", filepath.Base(opts.graphFile), g.NodeCount(), g.EdgeCount())
	if err := report.Run(stdout, title, result, renderOpts); err != nil {
		return err
	}
	if failed := result.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d partitions could not be scored", failed, len(result.Scores))
	}
	return nil
}

// partitionName labels a partition file by its base name without extensions.
func partitionName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, graph.SnappyExt)
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		stop()
		log.Fatalf("surprise: %v", err)
	}
}
