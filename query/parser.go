package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses SQL queries into a Query
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// normalize lower-cases and trims an identifier so later schema lookups
// are uniform. Applied once at parse time; row keys get the same
// treatment at load time.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// describe renders a token for error messages
func describe(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of query"
	case TokenString:
		return fmt.Sprintf("string %q", tok.Value)
	default:
		return "'" + tok.Value + "'"
	}
}

// parseErrorf builds a ParseError with a formatted reason
func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// Parse parses a SQL query
func Parse(text string) (*Query, error) {
	if err := ValidateQuery(text); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	tokens := Tokenize(text)

	if err := ValidateTokens(tokens); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	parser := NewParser(tokens)
	q, err := parser.parseQuery()
	if err != nil {
		return nil, err
	}

	// A trailing semicolon is allowed and ignored
	if parser.current().Type == TokenSemicolon {
		parser.advance()
	}

	if parser.current().Type == TokenError {
		return nil, parseErrorf("invalid character %s in query", describe(parser.current()))
	}
	if parser.current().Type != TokenEOF {
		return nil, parseErrorf("unexpected %s after query", describe(parser.current()))
	}

	return q, nil
}

// parseQuery parses: SELECT select_list FROM table [WHERE chain] [;]
func (p *Parser) parseQuery() (*Query, error) {
	if p.current().Type != TokenSelect {
		return nil, parseErrorf("query must start with SELECT, got %s", describe(p.current()))
	}
	p.advance()

	q := &Query{}
	if err := p.parseSelectList(q); err != nil {
		return nil, err
	}

	if p.current().Type != TokenFrom {
		return nil, parseErrorf("expected FROM after select list, got %s", describe(p.current()))
	}
	p.advance()

	tok := p.current()
	if tok.Type != TokenIdent && tok.Type != TokenString {
		return nil, parseErrorf("expected table name after FROM, got %s", describe(tok))
	}
	table := normalize(tok.Value)
	if err := ValidateTableName(table); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	q.Table = table
	p.advance()

	if p.current().Type == TokenWhere {
		p.advance()
		filter, err := p.parseConditionChain()
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	return q, nil
}

// parseSelectList parses: "*" | column ("," column)* | COUNT "(" ("*"|column) ")"
func (p *Parser) parseSelectList(q *Query) error {
	switch p.current().Type {
	case TokenStar:
		q.Star = true
		p.advance()
		return nil

	case TokenCount:
		p.advance()
		agg, err := p.parseCountArgument()
		if err != nil {
			return err
		}
		q.Aggregate = agg
		return nil

	case TokenIdent:
		for {
			col := normalize(p.current().Value)
			if err := ValidateColumnName(col); err != nil {
				return &ParseError{Reason: err.Error()}
			}
			q.Columns = append(q.Columns, col)
			p.advance()

			if p.current().Type != TokenComma {
				return nil
			}
			p.advance()
			if p.current().Type != TokenIdent {
				return parseErrorf("expected column name after ',', got %s", describe(p.current()))
			}
		}

	default:
		return parseErrorf("expected '*', COUNT, or a column list after SELECT, got %s", describe(p.current()))
	}
}

// parseCountArgument parses the parenthesized argument of COUNT
func (p *Parser) parseCountArgument() (*Aggregate, error) {
	if p.current().Type != TokenLeftParen {
		return nil, parseErrorf("expected '(' after COUNT, got %s", describe(p.current()))
	}
	p.advance()

	agg := &Aggregate{}
	switch p.current().Type {
	case TokenStar:
		agg.Star = true
	case TokenIdent:
		col := normalize(p.current().Value)
		if err := ValidateColumnName(col); err != nil {
			return nil, &ParseError{Reason: err.Error()}
		}
		agg.Column = col
	default:
		return nil, parseErrorf("expected '*' or a column name in COUNT, got %s", describe(p.current()))
	}
	p.advance()

	if p.current().Type != TokenRightParen {
		return nil, parseErrorf("expected ')' after COUNT argument, got %s", describe(p.current()))
	}
	p.advance()

	return agg, nil
}

// parseConditionChain parses: condition (("AND"|"OR") condition)*
//
// Connectives apply strictly left to right with no precedence, so
// `a OR b AND c` groups as `(a OR b) AND c`. This matches the query
// language's documented behavior and must not be "fixed" to
// conventional precedence.
func (p *Parser) parseConditionChain() (Expression, error) {
	left, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd || p.current().Type == TokenOr {
		op := p.current().Type
		p.advance()

		right, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: op,
			Right:    right,
		}
	}

	return left, nil
}

// parseCondition parses: column operator literal
func (p *Parser) parseCondition() (Expression, error) {
	if p.current().Type != TokenIdent {
		return nil, parseErrorf("expected column name in WHERE, got %s", describe(p.current()))
	}
	column := normalize(p.current().Value)
	if err := ValidateColumnName(column); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	p.advance()

	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, parseErrorf("expected comparison operator after '%s', got %s", column, describe(p.current()))
	}

	var value Literal
	switch p.current().Type {
	case TokenString:
		value = Literal{Raw: p.current().Value}
	case TokenNumber:
		raw := p.current().Value
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, parseErrorf("invalid number '%s'", raw)
		}
		value = Literal{Raw: raw, Num: num, IsNum: true}
	default:
		return nil, parseErrorf("expected a quoted string or number after operator, got %s", describe(p.current()))
	}
	p.advance()

	return &ComparisonExpr{
		Column:   column,
		Operator: operator,
		Value:    value,
	}, nil
}
