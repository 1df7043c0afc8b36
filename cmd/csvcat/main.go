package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

var (
	queryFlag  = flag.String("q", "", "SQL query (e.g., \"select * from people where age > 30\")")
	formatFlag = flag.String("f", "table", "Output format: table, csv, jsonl")
	limitFlag  = flag.Int("limit", 0, "Limit number of output rows (0 = unlimited)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to query CSV (and Parquet) files with a SQL subset.\n\n")
		fmt.Fprintf(os.Stderr, "Without -q an interactive shell is started on the loaded file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s people.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"select name, city from people where age > 30\" people.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv -q \"select count(*) from people\" people.csv\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported formats: table, csv, jsonl\n")
		os.Exit(1)
	}

	var filename string
	if flag.NArg() >= 1 {
		filename = flag.Arg(0)
	}

	// Parse the one-shot query first so its FROM clause can stand in for
	// a missing file argument
	var q *query.Query
	if *queryFlag != "" {
		q, err = query.Parse(*queryFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			fmt.Fprintf(os.Stderr, "Query format: select <columns> from <table> where <condition>\n")
			fmt.Fprintf(os.Stderr, "Example: select * from people.csv where age > 30\n")
			os.Exit(1)
		}
		if filename == "" {
			filename = q.Table
		}
	}

	if filename == "" {
		fmt.Fprintf(os.Stderr, "Error: missing file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}

	tbl, err := reader.Load(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if q == nil {
		repl(tbl, formatter, *limitFlag)
		return
	}

	res, err := query.Execute(q, tbl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		// List available columns to help the user
		var colErr *query.UnknownColumnError
		if errors.As(err, &colErr) && len(tbl.Columns) > 0 {
			fmt.Fprintf(os.Stderr, "Available columns: %s\n", strings.Join(tbl.Columns, ", "))
		}
		os.Exit(1)
	}

	if *limitFlag > 0 && len(res.Rows) > *limitFlag {
		res.Rows = res.Rows[:*limitFlag]
	}

	if err := formatter.Format(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// newFormatter maps a -f flag value to a formatter writing to stdout
func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}
