// Command closestpair reads points from a file (or generates them), finds the
// closest pair and prints it.
//
// Usage:
//
//	closestpair [-file points.txt] [-precision 6]
//	closestpair -gen uniform -n 100000 -seed 42 -brute=false
//
// Exit status is 1 when the input cannot be read or parsed and 2 on bad
// flags. Fewer than two points is not an error: the tool prints
// "Need at least two points." and exits 0.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/closestpair/closestpair"
	"github.com/katalvlaran/closestpair/internal/logger"
	"github.com/katalvlaran/closestpair/pointgen"
	"github.com/katalvlaran/closestpair/pointio"
)

// bruteLimit caps the -brute cross-check; it is quadratic.
const bruteLimit = 20000

type config struct {
	file      string
	gen       string
	n         int
	seed      int64
	precision int
	brute     bool
	logLevel  string
	logFormat string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("closestpair", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", pointio.DefaultFile, "points file, one \"x y\" pair per line")
	fs.StringVar(&cfg.gen, "gen", "", "generate points instead of reading: uniform|grid|line|column|cluster")
	fs.IntVar(&cfg.n, "n", 1000, "number of generated points")
	fs.Int64Var(&cfg.seed, "seed", 0, "generator seed (0 = default)")
	fs.IntVar(&cfg.precision, "precision", pointio.DefaultPrecision, "decimals in the report")
	fs.BoolVar(&cfg.brute, "brute", false, "cross-check against the O(n²) solver")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "debug|info|warn|error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "text|json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lvl, err := logger.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	typ, err := logger.ParseType(cfg.logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := logger.New(logger.Options{Buffer: stderr, Level: lvl, Type: typ})

	pts, source, err := load(cfg)
	if err != nil {
		log.Error("load points", "err", err)
		if errors.Is(err, pointio.ErrOpen) {
			fmt.Fprintf(stderr, "Error: could not open '%s'. Make sure it is in the working directory.\n", cfg.file)
		}
		return 1
	}
	fp, err := pointio.Fingerprint(pts)
	if err != nil {
		log.Warn("fingerprint", "err", err)
	}
	log = log.With("source", source, "input", fmt.Sprintf("%016x", fp))
	log.Info("points loaded", "count", message.NewPrinter(language.English).Sprintf("%d", len(pts)))

	var stats closestpair.Stats
	start := time.Now()
	pair, err := closestpair.Closest(pts, closestpair.WithStats(&stats))
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, closestpair.ErrInsufficientPoints):
		log.Warn("too few points", "count", len(pts))
	case err != nil:
		log.Error("solve", "err", err)
		return 1
	default:
		log.Debug("solved",
			"elapsed", elapsed,
			"comparisons", stats.Comparisons,
			"strip_comparisons", stats.StripComparisons,
			"merges", stats.Merges,
			"depth", stats.MaxDepth,
		)
	}

	if cfg.brute && pair.Valid() {
		if len(pts) > bruteLimit {
			log.Warn("brute-force cross-check skipped", "count", len(pts), "limit", bruteLimit)
		} else if ref := closestpair.BruteForce(pts); math.Abs(ref.Dist-pair.Dist) > 1e-9*math.Max(1, ref.Dist) {
			log.Error("cross-check mismatch", "divide", pair.Dist, "brute", ref.Dist)
			return 1
		} else {
			log.Info("cross-check ok", "dist", ref.Dist)
		}
	}

	rep := pointio.Report{Pair: pair, Count: len(pts), Source: source, Fingerprint: fp, Elapsed: elapsed}
	if err := pointio.WriteReport(stdout, rep, cfg.precision); err != nil {
		log.Error("write report", "err", err)
		return 1
	}
	return 0
}

// load returns the input points and a description of where they came from.
func load(cfg config) ([]closestpair.Point, string, error) {
	if cfg.gen == "" {
		pts, err := pointio.ReadFile(cfg.file)
		return pts, cfg.file, err
	}
	kind, err := pointgen.ParseKind(cfg.gen)
	if err != nil {
		return nil, "", err
	}
	pts, err := pointgen.Generate(kind, cfg.n, pointgen.WithSeed(cfg.seed))
	return pts, fmt.Sprintf("%s(n=%d, seed=%d)", kind, cfg.n, cfg.seed), err
}
