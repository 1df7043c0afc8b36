package query

import "fmt"

// ParseError reports query text that does not match the grammar. The
// caller may re-prompt; nothing about the session is invalidated.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "Parse error: " + e.Reason
}

// UnknownColumnError reports a referenced column that does not exist in
// the table schema. Raised at evaluation time, not parse time.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("Column '%s' not found.", e.Column)
}

// UnknownTableError reports a FROM table that does not match the loaded
// table.
type UnknownTableError struct {
	Table  string
	Loaded string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("Table '%s' not found (loaded table is '%s').", e.Table, e.Loaded)
}
