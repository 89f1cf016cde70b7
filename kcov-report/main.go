package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jayhlee/kcov-tools/analysis"
	"github.com/jayhlee/kcov-tools/clientconf"
	"github.com/jayhlee/kcov-tools/dataset"
	"github.com/jayhlee/kcov-tools/report"
)

// Exit codes
const (
	OK int = iota
	BAD_ARGS
	LOADER_ERROR
	REPORT_ERROR
)

// Current Version (passed in on build)
var build_version string
var build_timestamp string

func main() {
	// Parse arguments
	help := flag.Bool("help", false, "this help text")
	version := flag.Bool("version", false, "print the version")

	datafile := flag.String("file", "", "load the dataset from this CSV export instead of connecting to mysql")
	flag.StringVar(datafile, "f", "", "short for -file")
	table := flag.String("table", "regional", "mysql table holding the dataset, for live loading")

	reportsfile := flag.String("reports", "", "load report definitions from this yaml file instead of the built-ins")

	dates := flag.String("dates", "", "comma separated dates of interest (YYYY-MM-DD); keep only rows in their windows")
	days := flag.Int("days", 7, "how many days before each date of interest its window starts")
	datecol := flag.String("date-column", analysis.DateColumn, "dataset column holding the dates")

	out := flag.String("out", "", "output file for chart reports (default: <report>.png)")
	flag.StringVar(out, "o", "", "short for -out")
	clientconf.SetMySQLFlags()

	flag.Parse()

	if *version {
		fmt.Printf("kcov-tools %s (%s)\n", build_version, build_timestamp)
		os.Exit(OK)
	}

	// Load report definitions
	var err error
	if *reportsfile == "" {
		err = report.LoadDefaultReports()
	} else {
		var raw []byte
		raw, err = os.ReadFile(*reportsfile)
		if err == nil {
			err = report.ParseReports(string(raw))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading reports: %s\n", err)
		os.Exit(LOADER_ERROR)
	}

	// Define standard usage output
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kcov-tools %s (%s)\n\n", build_version, build_timestamp)

		fmt.Fprintln(os.Stderr, "Usage:\n  kcov-report [flags] <report>")
		fmt.Fprintln(os.Stderr, "Description:\n  charts and listings for the KDCA regional COVID-19 dataset")

		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nReports:")

		for _, name := range report.ListReports() {
			r, _ := report.GetReport(name)
			fmt.Fprintf(os.Stderr, "   %s\n", r.GetShortHelp())
		}
		os.Exit(BAD_ARGS)
	}

	// Print usage if we don't have exactly one non-flag cli arg
	if flag.NArg() != 1 {
		flag.Usage()
	}

	// Look for the requested report
	reportName := flag.Arg(0)
	rep, err := report.GetReport(reportName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
	}

	// Print help for the requested report
	if *help {
		fmt.Fprintln(os.Stderr, rep.GetShortHelp())
		os.Exit(OK)
	}

	// Load the dataset, from the CSV export or live from mysql
	var data dataset.Table

	if *datafile != "" {
		loader := dataset.NewFileLoader(*datafile)
		data, err = loader.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading dataset: %s\n", err)
			os.Exit(LOADER_ERROR)
		}
	} else {
		config, err := clientconf.GenerateConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating config: %s\n", err)
			os.Exit(LOADER_ERROR)
		}

		loader, err := dataset.NewLiveLoader(config, *table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting: %s\n", err)
			os.Exit(LOADER_ERROR)
		}
		defer loader.Close()

		data, err = loader.Load(rep.Columns())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading dataset: %s\n", err)
			os.Exit(LOADER_ERROR)
		}
	}

	// Narrow to the windows around the dates of interest, if given
	if *dates != "" {
		datesOfInterest := strings.Split(*dates, `,`)
		data, err = analysis.MatchingEntries(datesOfInterest, data, *datecol, *days)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error matching dates: %s\n", err)
			os.Exit(BAD_ARGS)
		}
	}

	outFile := *out
	if outFile == "" {
		outFile = fmt.Sprintf("%s.png", rep.Name)
	}

	if err := rep.Run(data, outFile, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error running report %s: %s\n", rep.Name, err)
		os.Exit(REPORT_ERROR)
	}

	os.Exit(OK)
}
