package chafengine

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-faster/errors"

	"github.com/go-faster/chaf/internal/chafql"
)

// KeepFunc decides whether the line should be written to the output.
type KeepFunc func(line []byte) (keep bool, _ error)

// EncodingError reports a line that is not valid UTF-8.
type EncodingError struct {
	// Offset is a byte offset of the first invalid sequence.
	Offset int
}

// Error implements error.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("input is not valid UTF-8: invalid byte at offset %d", e.Offset)
}

// Filter is a line predicate built from the query.
//
// By default, lines matching the query are dropped. If Invert is set,
// only matching lines are kept.
type Filter struct {
	matcher StringMatcher
	invert  bool
}

// BuildFilter creates new Filter.
func BuildFilter(expr chafql.Expr, invert bool) (*Filter, error) {
	m, err := Compile(expr)
	if err != nil {
		return nil, errors.Wrap(err, "compile")
	}
	return &Filter{
		matcher: m,
		invert:  invert,
	}, nil
}

// Keep implements KeepFunc.
func (f *Filter) Keep(line []byte) (bool, error) {
	if !utf8.Valid(line) {
		return false, &EncodingError{Offset: invalidOffset(line)}
	}

	matched := f.matcher.Match(string(line))
	if f.invert {
		return matched, nil
	}
	return !matched, nil
}

func invalidOffset(data []byte) int {
	var offset int
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
		data = data[size:]
	}
	return offset
}
