package chafengine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/chaf/internal/chafql"
)

// countingMatcher counts Match calls.
type countingMatcher struct {
	result bool
	calls  *int
}

func (m countingMatcher) Match(string) bool {
	*m.calls++
	return m.result
}

func TestMatcherShortCircuit(t *testing.T) {
	var leftCalls, rightCalls int
	left := countingMatcher{result: false, calls: &leftCalls}
	right := countingMatcher{result: true, calls: &rightCalls}

	and := AndMatcher[string, StringMatcher]{Left: left, Right: right}
	require.False(t, and.Match("line"))
	require.Equal(t, 1, leftCalls)
	require.Zero(t, rightCalls)

	left.result = true
	or := OrMatcher[string, StringMatcher]{Left: left, Right: right}
	require.True(t, or.Match("line"))
	require.Equal(t, 2, leftCalls)
	require.Zero(t, rightCalls)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		query string
		lines map[string]bool
	}{
		{
			`ERROR`,
			map[string]bool{
				"this is ERROR": true,
				"this is OK":    false,
				"this is error": false,
				"":              false,
			},
		},
		{
			`foo & bar`,
			map[string]bool{
				"foo bar":  true,
				"barfoo":   true,
				"foo only": false,
				"bar only": false,
			},
		},
		{
			`foo | bar`,
			map[string]bool{
				"contains foo": true,
				"contains bar": true,
				"neither":      false,
			},
		},
		{
			`!DEBUG`,
			map[string]bool{
				"DEBUG line": false,
				"INFO line":  true,
			},
		},
		{
			`(warn | error) & !timeout`,
			map[string]bool{
				"warn: disk":     true,
				"error: timeout": false,
				"info: timeout":  false,
				"info: ok":       false,
			},
		},
		{
			// Inner white space is dropped from the literal.
			`er ror`,
			map[string]bool{
				"error":  true,
				"er ror": false,
			},
		},
		{
			`ошибка`,
			map[string]bool{
				"произошла ошибка": true,
				"всё хорошо":       false,
			},
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			expr, err := chafql.Parse(tt.query)
			require.NoError(t, err)

			m, err := Compile(expr)
			require.NoError(t, err)

			for line, want := range tt.lines {
				got := m.Match(line)
				require.Equal(t, want, got, "query: %q, line: %q", tt.query, line)
				// Evaluation is idempotent.
				require.Equal(t, got, m.Match(line))
			}
		})
	}
}

func TestCompileUnexpected(t *testing.T) {
	_, err := Compile(nil)
	require.Error(t, err)

	_, err = Compile(&chafql.AndExpr{Left: &chafql.LiteralExpr{Value: "a"}})
	require.Error(t, err)
}

func TestCompileConcurrent(t *testing.T) {
	expr, err := chafql.Parse(`a & !b | c`)
	require.NoError(t, err)
	m, err := Compile(expr)
	require.NoError(t, err)

	lines := map[string]bool{
		"a":   true,
		"ab":  false,
		"abc": true,
		"x":   false,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for line, want := range lines {
					if m.Match(line) != want {
						t.Errorf("Match(%q) != %v", line, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
