// Command smooth applies smoothing transforms to a series of samples and
// prints the results side by side.
//
// Usage:
//
//	smooth [flags] [sample ...]
//
// Samples are read from the arguments or, when none are given, from stdin.
// They may be separated by whitespace, commas or semicolons.
//
// Examples:
//
//	smooth 81.0 80.8 80.5 80.4 80.0
//	smooth -window 7 -transform ema < weights.txt
//	smooth -window 5 -prefilter 3 -transform ma < weights.txt
//	smooth -transform slope -window 14 < weights.txt
//	smooth -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-smooth/dsp/smooth"
	"github.com/cwbudde/algo-smooth/stats/trend"
)

type transformEntry struct {
	name string
	desc string
	// seq is nil for transforms that reduce the series to a scalar.
	seq func(values []float64, window int) []float64
	// prefiltered transforms run after the optional median pre-filter.
	prefiltered bool
}

var registry = []transformEntry{
	{"ma", "causal moving average", smooth.MovingAverage, true},
	{"ema", "exponential moving average, alpha = 2/(window+1)", smooth.ExponentialMovingAverage, true},
	{"median", "centered median filter (odd window)", smooth.MedianFilter, false},
	{"slope", "least-squares slope over the trailing window", nil, false},
}

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return
		case errors.Is(err, errUsage):
			os.Exit(2)
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("smooth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	window := fs.Int("window", 3, "window length in samples")
	transform := fs.String("transform", "all", "transform to apply: ma, ema, median, slope or all")
	prefilter := fs.Int("prefilter", 0, "odd median pre-filter window applied before ma/ema (0 = off)")
	list := fs.Bool("list", false, "list available transforms")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: smooth [flags] [sample ...]\n\n")
		fmt.Fprintf(stderr, "Applies smoothing transforms to a series of samples.\n")
		fmt.Fprintf(stderr, "Without sample arguments, samples are read from stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  smooth 81.0 80.8 80.5 80.4 80.0\n")
		fmt.Fprintf(stderr, "  smooth -window 7 -transform ema < weights.txt\n")
		fmt.Fprintf(stderr, "  smooth -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	if *list {
		return printList(stdout)
	}

	entries, err := resolveEntries(*transform)
	if err != nil {
		return err
	}

	if *prefilter != 0 && (*prefilter < 0 || *prefilter%2 == 0) {
		fmt.Fprintf(stderr, "warning: prefilter window %d is not a positive odd number; ignored\n", *prefilter)
	}

	values, err := readSamples(fs.Args(), stdin)
	if err != nil {
		return err
	}

	return printResults(stdout, values, entries, *window, *prefilter)
}

func printList(w io.Writer) error {
	entries := append([]transformEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.name, e.desc); err != nil {
			return errors.Wrap(err, "write transform list")
		}
	}
	return errors.Wrap(tw.Flush(), "flush transform list")
}

func resolveEntries(name string) ([]transformEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" {
		return registry, nil
	}
	for _, e := range registry {
		if e.name == name {
			return []transformEntry{e}, nil
		}
	}
	return nil, errors.Errorf("unknown transform %q (use -list to see available)", name)
}

// readSamples parses samples from args, or from r when args is empty.
func readSamples(args []string, r io.Reader) ([]float64, error) {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "read samples")
		}
		text = string(data)
	}

	fields := strings.FieldsFunc(text, func(c rune) bool {
		switch c {
		case ' ', '\t', '\n', '\r', ',', ';':
			return true
		}
		return false
	})

	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid sample %q at position %d", f, i+1)
		}
		values = append(values, v)
	}
	return values, nil
}

func printResults(w io.Writer, values []float64, entries []transformEntry, window, prefilter int) error {
	var (
		header  = []string{"index", "input"}
		columns [][]float64
		slope   *float64
	)
	for _, e := range entries {
		if e.seq == nil {
			s := trend.Slope(values, window)
			slope = &s
			continue
		}

		seq := e.seq
		stage := func(v []float64) []float64 { return seq(v, window) }
		opts := []smooth.Option{smooth.WithStage(stage)}
		if e.prefiltered && prefilter > 0 {
			opts = append([]smooth.Option{smooth.WithMedianPrefilter(prefilter)}, opts...)
		}

		header = append(header, e.name)
		columns = append(columns, smooth.NewPipeline(opts...).Apply(values))
	}

	if len(columns) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
			return errors.Wrap(err, "write header")
		}
		for i, v := range values {
			row := []string{strconv.Itoa(i), formatSample(v)}
			for _, c := range columns {
				row = append(row, formatSample(c[i]))
			}
			if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
				return errors.Wrap(err, "write row")
			}
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, "flush output")
		}
	}

	if slope != nil {
		if _, err := fmt.Fprintf(w, "slope: %.6f\n", *slope); err != nil {
			return errors.Wrap(err, "write slope")
		}
	}
	return nil
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
