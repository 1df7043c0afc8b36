package reader

import "fmt"

// NotFoundError reports a source file that does not exist. The engine
// propagates it untouched, so the message a user sees is the loader's.
type NotFoundError struct {
	Name   string
	Format string // "CSV" or "Parquet"
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s file '%s' not found.", e.Format, e.Name)
}
