package chafql

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-faster/errors"
	"github.com/mattn/go-runewidth"
)

var (
	// ErrEmptyQuery reports a query consisting only of white space.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrEmptyPattern reports a missing term, e.g. two operators in a row.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrUnmatchedParen reports '(' without a closing ')'.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")
	// ErrTrailingTokens reports unconsumed input after the expression.
	ErrTrailingTokens = errors.New("unexpected trailing tokens")
)

// ParseError is a query parsing error.
type ParseError struct {
	// Pos is a byte offset in the query.
	Pos int
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %d: %s", e.Pos, e.Err)
}

// Unwrap implements [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError implements [errors.Formatter].
func (e *ParseError) FormatError(p errors.Printer) error {
	p.Printf("at %d", e.Pos)
	return e.Err
}

// Caret renders the query with a caret under the error position.
//
//	foo & & bar
//	      ^
func (e *ParseError) Caret(query string) string {
	pos := min(max(e.Pos, 0), len(query))
	// Query is printed as a single line.
	head := strings.Map(flattenSpace, query[:pos])
	query = head + strings.Map(flattenSpace, query[pos:])

	var sb strings.Builder
	sb.WriteString(query)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(head)))
	sb.WriteByte('^')
	return sb.String()
}

func flattenSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

func (p *parser) errorf(err error) error {
	return &ParseError{
		Pos: p.pos,
		Err: err,
	}
}
