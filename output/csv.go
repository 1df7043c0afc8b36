package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vegasq/csvcat/query"
)

// CSVFormatter outputs results as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV. Counts become a single-column,
// single-row document headed by the aggregate label.
func (c *CSVFormatter) Format(res *query.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if res.IsCount {
		if err := csvWriter.Write([]string{res.Label}); err != nil {
			return err
		}
		if err := csvWriter.Write([]string{strconv.FormatInt(res.Count, 10)}); err != nil {
			return err
		}
	} else {
		if err := csvWriter.Write(res.Columns); err != nil {
			return err
		}
		for _, row := range res.Rows {
			record := make([]string, len(res.Columns))
			for i, col := range res.Columns {
				record[i] = sanitizeCell(row[col])
			}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitizeCell guards against CSV injection by prefixing values whose
// first character could trigger formula execution in spreadsheet
// applications
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
