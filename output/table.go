package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/query"
)

// TableFormatter renders results as an aligned ASCII table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the result as a table. Empty row results render as a
// "(no rows)" line instead of a bare header.
func (t *TableFormatter) Format(res *query.Result) error {
	if res.IsCount {
		table := newTable(t.writer)
		table.SetHeader([]string{res.Label})
		table.Append([]string{strconv.FormatInt(res.Count, 10)})
		table.Render()
		return nil
	}

	if len(res.Rows) == 0 {
		_, err := fmt.Fprintln(t.writer, "(no rows)")
		return err
	}

	table := newTable(t.writer)
	table.SetHeader(res.Columns)
	for _, row := range res.Rows {
		record := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			record[i] = row[col]
		}
		table.Append(record)
	}
	table.Render()
	return nil
}

// newTable configures a tablewriter with the house style: headers kept
// verbatim, no cell wrapping
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}
