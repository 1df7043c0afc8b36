// Package reader loads tabular files into in-memory tables.
//
// CSV is the primary format; Parquet files are supported through the
// parquet-go library. Either way the loader produces a query.Table with
// lower-cased trimmed headers and trimmed string values, which is the
// contract the query engine relies on for case- and
// whitespace-insensitive matching.
package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvcat/query"
)

// Load reads the named file into a table.
//
// A bare name without extension is also tried with ".csv" and
// ".parquet" appended, so `Load("people")` finds people.csv. Returns a
// *NotFoundError when no candidate exists.
func Load(name string) (*query.Table, error) {
	path, err := resolve(name)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return readParquet(path)
	}
	return readCSV(path)
}

// resolve finds the file for a table name, trying extension candidates
// for bare names
func resolve(name string) (string, error) {
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, name+".csv", name+".parquet")
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}

	format := "CSV"
	if strings.EqualFold(filepath.Ext(name), ".parquet") {
		format = "Parquet"
	}
	return "", &NotFoundError{Name: name, Format: format}
}

// readCSV reads a CSV file with a header row into a table
func readCSV(path string) (*query.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1 // Tolerate ragged rows; missing cells become ""

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}

	tbl := &query.Table{Name: tableName(path)}
	if len(records) == 0 {
		return tbl, nil
	}

	for _, col := range records[0] {
		tbl.Columns = append(tbl.Columns, normalizeColumn(col))
	}

	for _, record := range records[1:] {
		row := make(map[string]string, len(tbl.Columns))
		for i, col := range tbl.Columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// normalizeColumn lower-cases and trims a header cell, mirroring the
// normalization the parser applies to identifiers
func normalizeColumn(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}

// tableName derives the table name from a file path: base name, no
// extension, lower case
func tableName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}
