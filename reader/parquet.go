package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/query"
)

// readParquet reads a parquet file into a table. Values are rendered to
// trimmed strings so parquet sources go through the same comparison
// semantics as CSV data.
func readParquet(path string) (*query.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	tbl := &query.Table{Name: tableName(path)}
	for _, field := range pqFile.Schema().Fields() {
		tbl.Columns = append(tbl.Columns, normalizeColumn(field.Name()))
	}

	rows := parquet.NewReader(pqFile)
	defer func() { _ = rows.Close() }()

	for {
		raw := make(map[string]interface{})
		err := rows.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(map[string]string, len(raw))
		for col, val := range raw {
			row[normalizeColumn(col)] = formatCell(val)
		}
		// Columns absent from this row still belong to the schema
		for _, col := range tbl.Columns {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// formatCell renders a parquet value as the trimmed string the engine
// expects
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []byte:
		return strings.TrimSpace(string(val))
	case bool:
		return strconv.FormatBool(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
