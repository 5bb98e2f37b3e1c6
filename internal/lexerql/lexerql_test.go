package lexerql

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestIsTermStopRune(t *testing.T) {
	for _, r := range []rune{'&', '|', ')'} {
		require.True(t, IsTermStopRune(r), "%q", r)
		require.True(t, IsTermStopRune(byte(r)), "%q", r)
	}
	for _, r := range []rune{'(', '!', ' ', 'a', 'я'} {
		require.False(t, IsTermStopRune(r), "%q", r)
	}
}

func TestDecodeRune(t *testing.T) {
	r, size := DecodeRune("aя", 1)
	require.Equal(t, 'я', r)
	require.Equal(t, 2, size)

	r, size = DecodeRune("a\xff", 1)
	require.Equal(t, utf8.RuneError, r)
	require.Equal(t, 1, size)

	_, size = DecodeRune("a", 1)
	require.Zero(t, size)
}

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  int
	}{
		{"", 0, 0},
		{"   ", 0, 3},
		{"a  b", 1, 3},
		{"\t\n a", 0, 3},
		// U+3000 IDEOGRAPHIC SPACE is three bytes long.
		{"　a", 0, 3},
		{"abc", 3, 3},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			require.Equal(t, tt.want, SkipSpace(tt.input, tt.pos))
		})
	}
}
