package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/csvcat/query"
)

// JSONFormatter outputs results as JSON Lines
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// countResult is the JSON shape of an aggregate result
type countResult struct {
	Expr  string `json:"expr"`
	Count int64  `json:"count"`
}

// Format writes row results as one JSON object per line, and counts as
// a single {"expr":...,"count":...} object.
func (j *JSONFormatter) Format(res *query.Result) error {
	encoder := json.NewEncoder(j.writer)

	if res.IsCount {
		return encoder.Encode(countResult{Expr: res.Label, Count: res.Count})
	}

	for _, row := range res.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
