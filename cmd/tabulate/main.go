// Command tabulate reads a piecewise table from a YAML or JSON file and
// evaluates, linearises or integrates it.
//
// Usage:
//
//	tabulate [flags] linearise|integrate|evaluate table.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"gopkg.in/yaml.v3"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/linearisation"
)

var errUsage = errors.New("usage: tabulate [flags] linearise|integrate|evaluate table.yaml")

type options struct {
	tolerance float64
	threshold float64
	at        string
	bins      string
	ps        string
	verbose   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("tabulate failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := flag.NewFlagSet("tabulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.tolerance, "tolerance", linearisation.DefaultToleranceValue, "relative linearisation tolerance")
	fs.Float64Var(&o.threshold, "threshold", linearisation.DefaultThresholdValue, "absolute linearisation threshold")
	fs.StringVar(&o.at, "x", "", "comma separated x values for evaluate")
	fs.StringVar(&o.bins, "bins", "", "comma separated bin boundaries for integrate")
	fs.StringVar(&o.ps, "ps", "", "write a PostScript plot of the table to this file")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	data, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	in, err := parseInput(data)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tolerance":
			in.Tolerance.Tolerance = o.tolerance
		case "threshold":
			in.Tolerance.Threshold = o.threshold
		}
	})
	convergence, err := linearisation.NewTolerance(in.Tolerance.Tolerance, in.Tolerance.Threshold)
	if err != nil {
		return err
	}

	table, err := in.table(piecewise.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("table loaded", "file", fs.Arg(1), "points", table.NumberPoints(),
		"regions", table.NumberRegions(), "domain", table.Domain())

	if o.ps != "" {
		if err := table.DrawPS(o.ps); err != nil {
			return err
		}
		logger.Info("plot written", "file", o.ps)
	}

	switch fs.Arg(0) {
	case "linearise":
		return linearise(stdout, table, convergence)
	case "integrate":
		return integrate(stdout, table, convergence, o.bins)
	case "evaluate":
		return evaluate(stdout, table, o.at)
	}
	return errUsage
}

func linearise(w io.Writer, table *piecewise.Table, c linearisation.Convergence) error {
	lin, err := table.Linearise(c)
	if err != nil {
		return err
	}
	slog.Info("linearised", "points", table.NumberPoints(), "linearised", lin.NumberPoints())

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lin.Dump()); err != nil {
		return err
	}
	return enc.Close()
}

type integrals struct {
	Integral float64   `yaml:"integral"`
	Mean     float64   `yaml:"mean"`
	Average  float64   `yaml:"average"`
	Variance *float64  `yaml:"variance,omitempty"`
	Bins     []float64 `yaml:"bins,omitempty"`
	Binned   []float64 `yaml:"binned,omitempty"`
}

func integrate(w io.Writer, table *piecewise.Table, c linearisation.Convergence, bins string) error {
	result := integrals{
		Integral: table.Integral(),
		Mean:     table.Mean(),
	}
	result.Average = result.Mean / result.Integral
	if v, err := table.Variance(result.Average); err == nil {
		result.Variance = &v
	} else if !errors.Is(err, piecewise.ErrUnsupportedLaw) {
		return err
	}

	boundaries, err := parseFloats(bins)
	if err != nil {
		return fmt.Errorf("bins: %w", err)
	}
	if boundaries != nil {
		integrator, err := piecewise.NewIntegrator(boundaries...)
		if err != nil {
			return err
		}
		lin, err := table.Linearise(c)
		if err != nil {
			return err
		}
		result.Bins = boundaries
		if result.Binned, err = integrator.Integrate(lin); err != nil {
			return err
		}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

func evaluate(w io.Writer, table *piecewise.Table, at string) error {
	values, err := parseFloats(at)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	for _, x := range values {
		fmt.Fprintf(w, "%v\t%v\n", x, table.Evaluate(x))
	}
	return nil
}
