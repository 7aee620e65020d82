package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/dmath/dijkstra"
	"github.com/katalvlaran/dmath/edgefile"
	"github.com/katalvlaran/dmath/internal/config"
	"github.com/katalvlaran/dmath/internal/logging"
	"github.com/katalvlaran/dmath/numeric"
)

const helpMessage = `
dmath computes shortest paths and number-theory results

Usage: dmath <command> [options] [args]

Commands:
  path   -graph FILE -from A[,B...] [-to T]  shortest distances and paths
  primes N                                  primes up to N
  factor N                                  prime factorisation of N
  phi    N                                  Euler's totient of N
  cfr    [-n K] D                           continued fraction of √D and K convergents
  farey  N                                  Farey sequence of order N
  sums   -n N c1 c2 ...                     ways to write 0..N as sums of c1, c2, ...
  help                                      show this message

`

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// errUsage marks errors caused by bad arguments rather than bad input data.
var errUsage = errors.New("usage")

type app struct {
	cfg    *config.Config
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"path":   runPath,
	"primes": runPrimes,
	"factor": runFactor,
	"phi":    runPhi,
	"cfr":    runCFR,
	"farey":  runFarey,
	"sums":   runSums,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, helpMessage)
		return exitUsage
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, helpMessage)
		return exitOK
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "dmath: unknown command %q\n%s", name, helpMessage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "dmath: %v\n", err)
		return exitRuntime
	}
	logger, err := logging.New(loggerConfig(cfg.Logging))
	if err != nil {
		fmt.Fprintf(stderr, "dmath: %v\n", err)
		return exitRuntime
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, log: logger, stdout: stdout, stderr: stderr}
	err = cmd(ctx, a, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "dmath %s: %v\n", name, err)
		return exitUsage
	default:
		logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(stderr, "dmath %s: %v\n", name, err)
		return exitRuntime
	}
}

// loggerConfig picks the production or development preset and applies the
// environment overrides on top of it.
func loggerConfig(lc config.LogConfig) logging.Config {
	out := logging.DefaultConfig()
	if lc.Development {
		out = logging.DevelopmentConfig()
	}
	if lc.Level != "" {
		out.Level = lc.Level
	}
	out.File = lc.File
	out.MaxSizeMB = lc.MaxSizeMB
	out.MaxAgeDays = lc.MaxAgeDays

	return out
}

// ------------------------------------------------------------------------
// argument helpers
// ------------------------------------------------------------------------

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func newFlagSet(a *app, name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: dmath %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func parseUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, usagef("can't parse %q as a non-negative integer", s)
	}
	return n, nil
}

// singleUint parses a subcommand taking exactly one numeric argument.
func singleUint(a *app, name string, args []string) (uint64, error) {
	fs := newFlagSet(a, name, "N")
	if err := parseFlags(fs, args); err != nil {
		return 0, err
	}
	if fs.NArg() != 1 {
		return 0, usagef("expected exactly one argument, got %d", fs.NArg())
	}
	return parseUint(fs.Arg(0))
}

// ------------------------------------------------------------------------
// path
// ------------------------------------------------------------------------

func runPath(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "path", "-graph FILE -from A[,B...] [-to T]")
	graph := fs.String("graph", "", "edge-list file (.yaml, .yml, .toml or .json, optionally .gz)")
	from := fs.String("from", "", "comma-separated source nodes")
	to := fs.String("to", "", "target node (default: every reached node)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *graph == "" || *from == "" {
		return usagef("-graph and -from are required")
	}
	if fs.NArg() > 0 {
		return usagef("unexpected arguments %v", fs.Args())
	}

	file, err := edgefile.Load(*graph)
	if err != nil {
		return err
	}
	edges, err := file.EdgeWeights()
	if err != nil {
		return err
	}
	eng, err := dijkstra.New(edges, dijkstra.WithLogger[float64](a.log.Logger))
	if err != nil {
		return err
	}
	a.log.Info("graph loaded",
		zap.String("file", *graph),
		zap.Int("nodes", eng.NodeCount()),
		zap.Int("edges", eng.EdgeCount()),
	)
	fmt.Fprintf(a.stdout, "graph %s: %s nodes, %s edges\n",
		filepath.Base(*graph), humanize.Comma(int64(eng.NodeCount())), humanize.Comma(int64(eng.EdgeCount())))

	sources := splitSources(*from)
	results, err := eng.SolveAll(ctx, sources, a.cfg.Engine.Workers)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if err = printResult(a.stdout, eng, results[src], *to); err != nil {
			return err
		}
	}

	return nil
}

// splitSources splits a comma list, dropping blanks and repeats.
func splitSources(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

func printResult(w io.Writer, eng *dijkstra.Engine[string, float64], res *dijkstra.Result[string, float64], to string) error {
	src := res.Source()
	if to != "" {
		return printPath(w, res, src, to)
	}

	for _, n := range eng.Nodes() {
		ok, err := res.Reachable(n)
		if err != nil {
			return err
		}
		if ok {
			if err = printPath(w, res, src, n); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(w, "%s: reached %s of %s nodes\n",
		src, humanize.Comma(int64(res.Stats().Reached)), humanize.Comma(int64(eng.NodeCount())))

	return nil
}

func printPath(w io.Writer, res *dijkstra.Result[string, float64], src, dst string) error {
	p, err := res.PathTo(dst)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		fmt.Fprintf(w, "%s → %s: unreachable\n", src, dst)
		return nil
	}
	if err != nil {
		return err
	}
	d, err := res.DistanceTo(dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s → %s: %s via %s\n", src, dst, strconv.FormatFloat(d, 'g', -1, 64), strings.Join(p, " → "))

	return nil
}

// ------------------------------------------------------------------------
// numeric commands
// ------------------------------------------------------------------------

func runPrimes(_ context.Context, a *app, args []string) error {
	n, err := singleUint(a, "primes", args)
	if err != nil {
		return err
	}

	primes, err := numeric.Eratosthenes(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, joinUints(primes, " "))
	fmt.Fprintf(a.stdout, "%s primes ≤ %s\n", humanize.Comma(int64(len(primes))), strconv.FormatUint(n, 10))

	return nil
}

func runFactor(_ context.Context, a *app, args []string) error {
	n, err := singleUint(a, "factor", args)
	if err != nil {
		return err
	}

	factors, err := numeric.PrimeFactors(n)
	if err != nil {
		return err
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.FormatUint(f.Prime, 10)
		if f.Exp > 1 {
			parts[i] += "^" + strconv.FormatUint(uint64(f.Exp), 10)
		}
	}
	fmt.Fprintf(a.stdout, "%d = %s\n", n, strings.Join(parts, " · "))

	return nil
}

func runPhi(_ context.Context, a *app, args []string) error {
	n, err := singleUint(a, "phi", args)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "φ(%d) = %d\n", n, numeric.EulerPhi(n))
	return nil
}

func runCFR(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "cfr", "[-n K] D")
	k := fs.Int("n", 0, "number of convergents to print")
	limit := fs.Int("max-iter", numeric.DefaultCFRIterations, "iteration limit when searching for the period")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one argument, got %d", fs.NArg())
	}
	if *k < 0 || *limit < 0 {
		return usagef("-n and -max-iter must be non-negative")
	}
	d, err := parseUint(fs.Arg(0))
	if err != nil {
		return err
	}

	cf, err := numeric.CFRLimit(d, *limit)
	if err != nil {
		return err
	}
	terms := cf.Terms
	fmt.Fprintf(a.stdout, "√%d = [%d; %s]", d, terms[0], joinUints(terms[1:], ", "))
	if cf.Period > 0 {
		fmt.Fprintf(a.stdout, " period %d\n", cf.Period)
	} else {
		fmt.Fprintf(a.stdout, " period not found within %d iterations\n", *limit)
	}

	for i := 0; i < *k; i++ {
		f, err := numeric.Convergent(i, cf)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "c%d = %v\n", i, f)
	}

	return nil
}

func runFarey(_ context.Context, a *app, args []string) error {
	n, err := singleUint(a, "farey", args)
	if err != nil {
		return err
	}

	seq, err := numeric.Farey(n)
	if err != nil {
		return err
	}
	parts := make([]string, len(seq))
	for i, f := range seq {
		parts[i] = f.String()
	}
	fmt.Fprintln(a.stdout, strings.Join(parts, " "))
	fmt.Fprintf(a.stdout, "|F_%d| = %s\n", n, humanize.Comma(int64(len(seq))))

	return nil
}

func runSums(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "sums", "-n N c1 c2 ...")
	n := fs.Uint64("n", 0, "largest total to count")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	candidates := make([]uint64, 0, fs.NArg())
	for _, s := range fs.Args() {
		c, err := parseUint(s)
		if err != nil {
			return err
		}
		candidates = append(candidates, c)
	}

	table, err := numeric.NumberOfSummations(candidates, *n)
	if err != nil {
		return err
	}
	for x, ways := range table {
		fmt.Fprintf(a.stdout, "%d: %d\n", x, ways)
	}

	return nil
}

func joinUints(xs []uint64, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatUint(x, 10)
	}
	return strings.Join(parts, sep)
}
