// Package query provides SQL query parsing and evaluation for tabular data.
//
// It implements a small SQL subset with SELECT column lists, COUNT
// aggregation, and WHERE clauses combining comparisons with AND/OR. The
// package includes a lexer for tokenization, a parser for building the
// query structure, and an evaluator that applies a query to an in-memory
// table.
//
// Example usage:
//
//	q, err := query.Parse(`select name, city from people where age > 30`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := query.Execute(q, table)
package query

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere
	TokenAnd
	TokenOr
	TokenCount

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Delimiters
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenStar       // *
	TokenSemicolon  // ;

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Table is the evaluator's input: an ordered header and a sequence of
// rows keyed by lower-cased column name. The loader trims all values
// before rows reach the engine; the engine never mutates them.
type Table struct {
	Name    string
	Columns []string
	Rows    []map[string]string
}

// Query represents a parsed SQL query.
//
// Exactly one of Star, Columns, or Aggregate describes the select list.
type Query struct {
	Table     string     // identifier after FROM, lower-cased
	Star      bool       // SELECT *
	Columns   []string   // explicit column list, lower-cased, in query order
	Aggregate *Aggregate // COUNT(...), mutually exclusive with Star/Columns
	Filter    Expression // WHERE chain, nil when absent
}

// Aggregate represents a COUNT request in the select list.
type Aggregate struct {
	Star   bool   // COUNT(*)
	Column string // COUNT(column), empty when Star
}

// Label returns the display label for the aggregate, e.g. "COUNT(city)".
func (a *Aggregate) Label() string {
	if a.Star {
		return "COUNT(*)"
	}
	return "COUNT(" + a.Column + ")"
}

// Literal is a comparison operand taken from the query text. Bare
// numeric literals carry their parsed value alongside the raw text so a
// comparison can fall back to string matching when the row value does
// not parse as a number.
type Literal struct {
	Raw   string
	Num   float64
	IsNum bool
}

// Expression represents a boolean expression in the WHERE clause
type Expression interface {
	Evaluate(row map[string]string) (bool, error)
}

// BinaryExpr represents a binary expression (AND/OR).
//
// The parser builds these left-associatively with no operator
// precedence, so `a OR b AND c` groups as `(a OR b) AND c`. That
// grouping is part of the query language's documented behavior.
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// ComparisonExpr represents a comparison expression (column op literal)
type ComparisonExpr struct {
	Column   string
	Operator TokenType
	Value    Literal
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(row map[string]string) (bool, error) {
	left, err := b.Left.Evaluate(row)
	if err != nil {
		return false, err
	}

	right, err := b.Right.Evaluate(row)
	if err != nil {
		return false, err
	}

	if b.Operator == TokenAnd {
		return left && right, nil
	}
	return left || right, nil
}

// Evaluate evaluates a comparison expression
func (c *ComparisonExpr) Evaluate(row map[string]string) (bool, error) {
	value, exists := row[c.Column]
	if !exists {
		return false, &UnknownColumnError{Column: c.Column}
	}

	return compare(value, c.Operator, c.Value), nil
}

// referencedColumns returns every column name the query mentions, in
// select-list order followed by filter order. Duplicates are kept; the
// schema check only cares about membership.
func (q *Query) referencedColumns() []string {
	var cols []string
	cols = append(cols, q.Columns...)
	if q.Aggregate != nil && !q.Aggregate.Star {
		cols = append(cols, q.Aggregate.Column)
	}
	collectColumns(q.Filter, &cols)
	return cols
}

// collectColumns walks a filter expression collecting comparison columns
func collectColumns(expr Expression, cols *[]string) {
	switch e := expr.(type) {
	case *BinaryExpr:
		collectColumns(e.Left, cols)
		collectColumns(e.Right, cols)
	case *ComparisonExpr:
		*cols = append(*cols, e.Column)
	}
}
