package query

import "strings"

// evaluateCount evaluates a COUNT aggregate over already-filtered rows.
//
// COUNT(*) counts every row. COUNT(column) counts rows whose value for
// that column is non-empty after trimming; the schema check has already
// guaranteed the column exists.
func evaluateCount(agg *Aggregate, rows []map[string]string) int64 {
	if agg.Star {
		return int64(len(rows))
	}

	count := int64(0)
	for _, row := range rows {
		if strings.TrimSpace(row[agg.Column]) != "" {
			count++
		}
	}
	return count
}
