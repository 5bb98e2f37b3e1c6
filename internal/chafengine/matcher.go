package chafengine

import "strings"

// Matcher is a generic matcher.
type Matcher[T any] interface {
	Match(T) bool
}

// StringMatcher matches a string.
type StringMatcher interface {
	Matcher[string]
}

// NotMatcher is a NOT logical matcher.
type NotMatcher[T any, M Matcher[T]] struct {
	Next M
}

// Match implements Matcher.
func (m NotMatcher[T, M]) Match(v T) bool {
	return !m.Next.Match(v)
}

// AndMatcher is an AND logical matcher.
//
// Right is not evaluated if Left does not match.
type AndMatcher[T any, M Matcher[T]] struct {
	Left  M
	Right M
}

// Match implements Matcher.
func (m AndMatcher[T, M]) Match(v T) bool {
	return m.Left.Match(v) && m.Right.Match(v)
}

// OrMatcher is an OR logical matcher.
//
// Right is not evaluated if Left matches.
type OrMatcher[T any, M Matcher[T]] struct {
	Left  M
	Right M
}

// Match implements Matcher.
func (m OrMatcher[T, M]) Match(v T) bool {
	return m.Left.Match(v) || m.Right.Match(v)
}

// ContainsMatcher checks if a string contains value.
type ContainsMatcher struct {
	Value string
}

// Match implements StringMatcher.
func (m ContainsMatcher) Match(s string) bool {
	return strings.Contains(s, m.Value)
}
