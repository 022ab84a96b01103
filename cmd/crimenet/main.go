// SPDX-License-Identifier: MIT

// Command crimenet analyses a criminal/case involvement list: network
// statistics, greedy case coverage and Random Walk with Restart proximity.
//
// Usage:
//
//	crimenet [flags] <command> [args]
//
// Commands:
//
//	summary             graph and dataset statistics
//	degrees             degree histogram
//	weights             edge weight distribution
//	case-sizes          participants-per-case distribution
//	cover               greedy selection covering the threshold fraction of cases
//	rwr <criminal-id>   top associates of a criminal
//	cohesion <case-id>  mean RWR proximity among the members of a case
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/katalvlaran/crimenet/builder"
	"github.com/katalvlaran/crimenet/config"
	"github.com/katalvlaran/crimenet/core"
	"github.com/katalvlaran/crimenet/coverage"
	"github.com/katalvlaran/crimenet/dataset"
	"github.com/katalvlaran/crimenet/rwr"
	"github.com/katalvlaran/crimenet/stats"
	"github.com/rs/zerolog"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "crimenet:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// app carries everything a command needs once flags and input are loaded.
type app struct {
	ctx  context.Context
	cfg  *config.Config
	log  zerolog.Logger
	out  io.Writer
	ds   *dataset.Dataset
	g    *core.Graph
	args []string
}

type command func(a *app) error

var commands = map[string]command{
	"summary":    cmdSummary,
	"degrees":    cmdDegrees,
	"weights":    cmdWeights,
	"case-sizes": cmdCaseSizes,
	"cover":      cmdCover,
	"rwr":        cmdRWR,
	"cohesion":   cmdCohesion,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("crimenet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "config file (yaml, json or toml)")
		input      = fs.String("input", "", "criminal/case list")
		logLevel   = fs.String("log-level", "", "log level (debug, info, warn, error)")
		skip       = fs.Bool("skip-malformed", false, "skip malformed lines instead of failing")
		alpha      = fs.Float64("alpha", rwr.DefaultRestartProbability, "RWR restart probability")
		tolerance  = fs.Float64("tolerance", rwr.DefaultTolerance, "RWR L1 convergence tolerance")
		maxIter    = fs.Int("max-iter", rwr.DefaultMaxIterations, "RWR iteration cap (0 = none)")
		top        = fs.Int("top", 10, "number of associates printed by rwr")
		threshold  = fs.Float64("threshold", coverage.DefaultThreshold, "target case coverage fraction")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: crimenet [flags] <summary|degrees|weights|case-sizes|cover|rwr ID|cohesion CASE>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			return err
		}
	}
	// explicitly given flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Set(config.KeyInputPath, *input)
		case "log-level":
			cfg.Set(config.KeyLogLevel, *logLevel)
		case "skip-malformed":
			cfg.Set(config.KeySkipMalformed, *skip)
		case "alpha":
			cfg.Set(config.KeyRestartProbability, *alpha)
		case "tolerance":
			cfg.Set(config.KeyTolerance, *tolerance)
		case "max-iter":
			cfg.Set(config.KeyMaxIterations, *maxIter)
		case "top":
			cfg.Set(config.KeyTopK, *top)
		case "threshold":
			cfg.Set(config.KeyCoverageThreshold, *threshold)
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.InputPath() == "" {
		return fmt.Errorf("%w: no input (set -input or %s)", errUsage, config.KeyInputPath)
	}

	logger := cfg.CreateLogger(stderr)
	start := time.Now()
	ds, g, err := builder.LoadGraph(cfg.InputPath(), cfg.DatasetOptions(logger), builder.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", cfg.InputPath()).
		Int("criminals", ds.CriminalCount()).
		Int("cases", ds.CaseCount()).
		Int("skipped", ds.SkippedLines()).
		Dur("elapsed", time.Since(start)).
		Msg("graph built")

	a := &app{ctx: ctx, cfg: cfg, log: logger, out: stdout, ds: ds, g: g, args: fs.Args()[1:]}
	start = time.Now()
	if err := cmd(a); err != nil {
		return err
	}
	logger.Info().Str("command", name).Dur("elapsed", time.Since(start)).Msg("done")

	return nil
}

// idArg parses the single positional id required by rwr and cohesion.
func (a *app) idArg(what string) (int64, error) {
	if len(a.args) != 1 {
		return 0, fmt.Errorf("%w: expected one %s argument", errUsage, what)
	}
	id, err := strconv.ParseInt(a.args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", errUsage, what, a.args[0])
	}

	return id, nil
}

func (a *app) rwrOptions() []rwr.Option {
	return append(a.cfg.RWROptions(a.log), rwr.WithContext(a.ctx))
}

func cmdSummary(a *app) error {
	s := stats.Summarize(a.g)
	fmt.Fprintf(a.out, "criminals:            %d\n", a.ds.CriminalCount())
	fmt.Fprintf(a.out, "cases:                %d\n", a.ds.CaseCount())
	fmt.Fprintf(a.out, "records:              %d\n", a.ds.RecordCount())
	fmt.Fprintf(a.out, "nodes:                %d\n", s.Nodes)
	fmt.Fprintf(a.out, "edges:                %d\n", s.Edges)
	fmt.Fprintf(a.out, "total weight:         %d\n", s.TotalWeight)
	fmt.Fprintf(a.out, "average degree:       %.4f\n", s.AverageDegree)
	fmt.Fprintf(a.out, "density:              %.6f\n", s.Density)
	fmt.Fprintf(a.out, "average clustering:   %.4f\n", s.Clustering)
	fmt.Fprintf(a.out, "isolated:             %d\n", s.Isolated)
	fmt.Fprintf(a.out, "components:           %d\n", s.Components)
	fmt.Fprintf(a.out, "largest component:    %d\n", s.LargestComponent)
	fmt.Fprintf(a.out, "criminals per case:   %.4f\n", stats.AverageCriminalsPerCase(a.ds))

	return nil
}

func printBins(w io.Writer, header string, bins []stats.Bin) {
	fmt.Fprintln(w, header)
	for _, b := range bins {
		fmt.Fprintf(w, "%d\t%d\n", b.Value, b.Count)
	}
	mean, std := stats.MeanStdDev(bins)
	fmt.Fprintf(w, "mean %.4f std %.4f\n", mean, std)
}

func cmdDegrees(a *app) error {
	printBins(a.out, "degree\tcriminals", stats.DegreeHistogram(a.g))
	return nil
}

func cmdWeights(a *app) error {
	printBins(a.out, "weight\tedges", stats.WeightDistribution(a.g))
	return nil
}

func cmdCaseSizes(a *app) error {
	printBins(a.out, "size\tcases", stats.CaseSizeDistribution(a.ds))
	return nil
}

func cmdCover(a *app) error {
	res, err := coverage.Select(a.ds, a.cfg.CoverageOptions(a.log)...)
	if err != nil {
		return err
	}
	sub := stats.Summarize(core.InducedSubgraph(a.g, res.Set()))
	fmt.Fprintf(a.out, "selected %d criminals covering %d/%d cases (%.4f, target %.2f)\n",
		len(res.Selected), res.Covered, res.Total, res.Coverage, res.Threshold)
	fmt.Fprintf(a.out, "subnetwork: %d nodes, %d edges, %d components\n", sub.Nodes, sub.Edges, sub.Components)
	for _, id := range res.Selected {
		fmt.Fprintf(a.out, "%d\t%d\n", id, a.ds.CaseCountOf(id))
	}

	return nil
}

func cmdRWR(a *app) error {
	id, err := a.idArg("criminal id")
	if err != nil {
		return err
	}
	res, err := rwr.RandomWalkWithRestart(a.g, id, a.rwrOptions()...)
	if errors.Is(err, rwr.ErrNotConverged) {
		a.log.Warn().Int("iterations", res.Iterations).Float64("delta", res.Delta).Msg("reporting unconverged scores")
	} else if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "start %d (iterations %d, converged %t)\n", id, res.Iterations, res.Converged)
	for i, s := range res.Top(a.cfg.TopK()) {
		fmt.Fprintf(a.out, "%d\t%d\t%.6f\n", i+1, s.ID, s.Value)
	}

	return nil
}

func cmdCohesion(a *app) error {
	caseID, err := a.idArg("case id")
	if err != nil {
		return err
	}
	w, err := rwr.NewWalker(a.g)
	if err != nil {
		return err
	}
	c, err := rwr.CaseCohesion(w, a.ds, caseID, a.rwrOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "case %d: %d members, cohesion %.6f\n", c.Case, len(c.PerCriminal), c.Mean)
	for _, id := range a.ds.CriminalsIn(caseID) {
		if v, ok := c.PerCriminal[id]; ok {
			fmt.Fprintf(a.out, "%d\t%.6f\n", id, v)
		}
	}
	if len(c.Skipped) > 0 {
		fmt.Fprintf(a.out, "skipped: %v\n", c.Skipped)
	}

	return nil
}
