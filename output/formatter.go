// Package output provides formatters for rendering query results.
//
// Supported formats:
//   - Table: aligned ASCII table (the interactive default)
//   - CSV: comma-separated values with a header row
//   - JSON Lines: one JSON object per line
//
// Every formatter renders both row results and aggregate counts.
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(res); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/vegasq/csvcat/query"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes a query result in the formatter's specific format
	Format(res *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
