// Package lexerql provides utilities for lexing in *QL languages.
package lexerql

import (
	"unicode"
	"unicode/utf8"
)

type char interface {
	byte | rune
}

// IsBinaryOpRune returns true, if r is a binary operator of chaf query.
func IsBinaryOpRune[R char](r R) bool {
	return r == '&' || r == '|'
}

// IsTermStopRune returns true, if r terminates a bare term.
//
// Note that '(' and '!' do not: they are operators only at the start of a term.
func IsTermStopRune[R char](r R) bool {
	return IsBinaryOpRune(r) || r == ')'
}

// IsSpace returns true, if r is a Unicode white space.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// DecodeRune decodes rune at given byte offset.
//
// Returns size 0 at the end of input. Invalid UTF-8 is decoded
// as [utf8.RuneError] of size 1, so the caller can copy the raw byte.
func DecodeRune(s string, pos int) (r rune, size int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}

// SkipSpace returns offset of the first non-space rune starting from pos.
func SkipSpace(s string, pos int) int {
	for {
		r, size := DecodeRune(s, pos)
		if size == 0 || !IsSpace(r) {
			return pos
		}
		pos += size
	}
}
