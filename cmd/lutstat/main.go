// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Lutstat draws comparison charts from a lookup-table benchmark
// results table.
//
// Usage:
//
//	lutstat [options] [--] results.csv
//
// The results table is a CSV file with a header row naming at least
// the columns name, input_size, build, cbor_serialize,
// cbor_deserialize, json_serialize, json_deserialize, cbor_size and
// json_size, in any order. Durations are in seconds and sizes in
// bytes; the serialize and deserialize durations are cumulative, each
// including the build and any earlier step.
//
// Lutstat writes three PNG charts next to the input, named after its
// base name:
//
//	results_time.png   build, serialize and deserialize times, by ascending build time
//	results_size.png   CBOR and JSON encoded sizes, by ascending CBOR size
//	results_speed.png  throughput in GB/s (input size / time), by ascending build speed
//
// Existing files are overwritten. If any step fails, lutstat stops;
// charts already written are left in place.
//
// The options are:
//
//	-width inches
//	-height inches
//		size of each chart's plot area (default 10 by 6)
//	-dpi n
//		chart resolution in dots per inch (default 100)
//	-summary
//		print the mean, geometric mean, minimum and maximum of
//		each throughput metric after drawing the charts
//
// The first argument that is not one of these options is the results
// table, even if it begins with a dash. Use -- to end the options
// explicitly, as in "lutstat -- -width.csv".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/vg"

	"github.com/rsonpath/lutstat/lutchart"
	"github.com/rsonpath/lutstat/lutfmt"
	"github.com/rsonpath/lutstat/lutmath"
)

var exit = os.Exit // replaced during testing

const noInputMsg = "No parameters were passed. Please provide the path to the CSV file."

func main() {
	log.SetPrefix("lutstat: ")
	log.SetFlags(0)
	if err := lutstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			exit(2)
			return
		}
		log.Print(err)
		exit(1)
	}
}

func lutstat(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("lutstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lutstat [options] [--] results.csv\n")
		fmt.Fprintf(fs.Output(), "options:\n")
		fs.PrintDefaults()
	}
	def := lutchart.DefaultOptions()
	flagWidth := fs.Float64("width", float64(def.Width/vg.Inch), "plot area width in `inches`")
	flagHeight := fs.Float64("height", float64(def.Height/vg.Inch), "plot area height in `inches`")
	flagDPI := fs.Int("dpi", def.DPI, "chart resolution in dots per inch")
	flagSummary := fs.Bool("summary", false, "print a summary of each throughput metric")
	if err := fs.Parse(endOptions(fs, args)); err != nil {
		// fs has already reported the problem.
		return flag.ErrHelp
	}
	if *flagWidth <= 0 || *flagHeight <= 0 || *flagDPI <= 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, noInputMsg)
		return nil
	}
	// Further arguments are ignored.
	path := fs.Arg(0)

	opts := lutchart.Options{
		Width:  vg.Length(*flagWidth) * vg.Inch,
		Height: vg.Length(*flagHeight) * vg.Inch,
		DPI:    *flagDPI,
	}
	speeds, err := run(stdout, path, opts)
	if err != nil {
		return err
	}
	if *flagSummary {
		return printSummary(stdout, stderr, lutmath.Summarize(speeds))
	}
	return nil
}

// endOptions returns args with a "--" inserted before the first
// argument that does not name an option of fs, so a path such as
// "-run.csv" is taken as the results table rather than rejected.
func endOptions(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			return args
		}
		name, _, hasValue := strings.Cut(strings.TrimPrefix(arg[1:], "-"), "=")
		if name == "h" || name == "help" {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			out := append(args[:i:i], "--")
			return append(out, args[i:]...)
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		if !hasValue {
			i++ // skip the option's value
		}
	}
	return args
}

// run loads the table at path and saves its three charts, returning
// the derived throughput figures.
func run(stdout io.Writer, path string, opts lutchart.Options) ([]lutmath.SpeedRecord, error) {
	ds, err := lutfmt.Load(path)
	if err != nil {
		return nil, err
	}
	paths := lutchart.OutputPaths(path)

	if err := save(stdout, lutchart.TimeChart(ds), paths.Time, opts); err != nil {
		return nil, err
	}
	if err := save(stdout, lutchart.SizeChart(ds), paths.Size, opts); err != nil {
		return nil, err
	}
	speeds, err := lutmath.DeriveSpeeds(ds)
	if err != nil {
		return nil, err
	}
	if err := save(stdout, lutchart.SpeedChart(speeds), paths.Speed, opts); err != nil {
		return nil, err
	}
	return speeds, nil
}

func save(stdout io.Writer, c *lutchart.Chart, path string, opts lutchart.Options) error {
	fmt.Fprintf(stdout, "Saving statistic to %s\n", path)
	return c.Save(path, opts)
}

func printSummary(stdout, stderr io.Writer, sums []lutmath.Summary) error {
	var (
		names                        []string
		means, geomeans, mins, maxes []float64
	)
	for _, s := range sums {
		names = append(names, s.Metric.String())
		means = append(means, s.Mean)
		geomeans = append(geomeans, s.GeoMean)
		mins = append(mins, s.Min)
		maxes = append(maxes, s.Max)
		for _, w := range s.Warnings {
			fmt.Fprintf(stderr, "warning: %v\n", w)
		}
	}
	tab := new(table.Builder).
		Add("GB/s", names).
		Add("mean", means).
		Add("geomean", geomeans).
		Add("min", mins).
		Add("max", maxes).
		Done()
	fmt.Fprintln(stdout)
	return table.Fprint(stdout, tab, "%s", "%.3f", "%.3f", "%.3f", "%.3f")
}
