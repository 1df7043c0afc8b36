package query

import (
	"path/filepath"
	"strings"
)

// Result is the outcome of executing a query: either an ordered set of
// projected rows or a single aggregate count, never both.
type Result struct {
	Columns []string            // header of the projected rows, in output order
	Rows    []map[string]string // nil for aggregate results
	IsCount bool
	Count   int64
	Label   string // aggregate label, e.g. "COUNT(*)"
}

// Execute applies a parsed query to a table.
//
// Execution is a single synchronous pass: table check, schema check,
// filter, then projection or aggregation. The table's rows are read but
// never mutated, so the same query can be executed repeatedly (or
// concurrently against an immutable snapshot) with identical results.
func Execute(q *Query, tbl *Table) (*Result, error) {
	if err := checkTable(q.Table, tbl.Name); err != nil {
		return nil, err
	}

	schema := make(map[string]bool, len(tbl.Columns))
	for _, col := range tbl.Columns {
		schema[col] = true
	}
	for _, col := range q.referencedColumns() {
		if !schema[col] {
			return nil, &UnknownColumnError{Column: col}
		}
	}

	filtered, err := ApplyFilter(tbl.Rows, q.Filter)
	if err != nil {
		return nil, err
	}

	if q.Aggregate != nil {
		return &Result{
			IsCount: true,
			Count:   evaluateCount(q.Aggregate, filtered),
			Label:   q.Aggregate.Label(),
		}, nil
	}

	columns := q.Columns
	if q.Star {
		columns = tbl.Columns
	}
	return &Result{
		Columns: columns,
		Rows:    Project(filtered, columns),
	}, nil
}

// checkTable compares the FROM identifier against the loaded table
// name. Both sides are reduced to a bare lower-case name so
// `FROM people`, `FROM people.csv`, and `FROM data/people.csv` all
// address the table loaded from data/people.csv.
func checkTable(queried, loaded string) error {
	if queried == "" || loaded == "" {
		return nil
	}
	if tableBase(queried) != tableBase(loaded) {
		return &UnknownTableError{Table: queried, Loaded: loaded}
	}
	return nil
}

// tableBase strips any directory and extension from a table name
func tableBase(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}
