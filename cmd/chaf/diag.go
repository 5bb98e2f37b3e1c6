package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/mattn/go-isatty"

	"github.com/go-faster/chaf/internal/chafql"
)

// queryError is a query syntax error bound to the query.
type queryError struct {
	Query string
	Err   *chafql.ParseError
}

// Error implements error.
func (e *queryError) Error() string {
	return fmt.Sprintf("syntax error %s", e.Err)
}

// Unwrap implements [errors.Unwrap] interface.
func (e *queryError) Unwrap() error {
	return e.Err
}

func parseQuery(query string) (chafql.Expr, error) {
	expr, err := chafql.Parse(query)
	if err != nil {
		var perr *chafql.ParseError
		if errors.As(err, &perr) {
			return nil, &queryError{Query: query, Err: perr}
		}
		return nil, err
	}
	return expr, nil
}

// printError prints command error to w.
//
// Syntax errors are printed with a caret pointing to the error position.
func printError(w io.Writer, err error) {
	var qerr *queryError
	if !errors.As(err, &qerr) {
		fmt.Fprintf(w, "%+v\n", err)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", color.New(color.FgRed, color.Bold).Sprint("syntax error"), qerr.Err)
	if errors.Is(qerr.Err, chafql.ErrEmptyQuery) {
		return
	}
	caret := qerr.Err.Caret(qerr.Query)
	fmt.Fprintln(w, color.New(color.FgHiBlack).Sprint(caret))
}

// colorDisabled whether colors should be disabled for f.
func colorDisabled(f *os.File) bool {
	return os.Getenv("NO_COLOR") != "" ||
		os.Getenv("TERM") == "dumb" ||
		(!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()))
}
