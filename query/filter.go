package query

import (
	"strconv"
	"strings"
)

// parseNumber converts a cell value to float64 if possible. Empty
// strings are not numbers.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// fold normalizes a value for string comparison: surrounding whitespace
// and letter case are insignificant.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// compare compares a row's cell against a query literal.
//
// When both operands parse as numbers the comparison is numeric;
// otherwise both sides are compared as case-insensitive strings. The
// choice is made lazily per comparison because the source data declares
// no column types.
func compare(cell string, operator TokenType, lit Literal) bool {
	if lit.IsNum {
		if num, ok := parseNumber(cell); ok {
			return compareNumbers(num, operator, lit.Num)
		}
	}
	return compareStrings(fold(cell), operator, fold(lit.Raw))
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator TokenType, right float64) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two already-folded strings
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// ApplyFilter returns the rows matching the filter, preserving input
// order. A nil filter retains every row.
func ApplyFilter(rows []map[string]string, filter Expression) ([]map[string]string, error) {
	if filter == nil {
		return rows, nil
	}

	filtered := make([]map[string]string, 0)
	for _, row := range rows {
		match, err := filter.Evaluate(row)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// Project reduces each row to the requested columns, in the requested
// order, preserving row order. Rows are copied; the input is never
// mutated.
func Project(rows []map[string]string, columns []string) []map[string]string {
	projected := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out := make(map[string]string, len(columns))
		for _, col := range columns {
			out[col] = row[col]
		}
		projected = append(projected, out)
	}
	return projected
}
