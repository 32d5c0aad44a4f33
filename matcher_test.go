package streamscan_test

import (
	"testing"

	"github.com/chaisql/streamscan"
	"github.com/stretchr/testify/require"
)

func TestPatternMatchPrefix(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		region  string
		n       int
		limited bool
		ok      bool
	}{
		{"anchored prefix", "a*", "aaab", 3, false, true},
		{"whole region", "a*", "aaa", 3, true, true},
		{"empty match", "x*", "abc", 0, false, true},
		{"empty region", "a*", "", 0, true, true},
		{"no match", "b", "abc", 0, false, false},
		{"no search forward", "b+", "abbb", 0, false, false},
		{"fixed length", "P[^F]", "PaPb", 2, false, true},
		{"fixed length at edge", "P[^F]", "Pa", 2, true, true},
		{"multi-byte runes", "[αβ]+", "αβγ", 2, false, true},
		{"multi-byte at edge", "[αβγ]+", "αβγ", 3, true, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := streamscan.MustCompilePattern(test.expr)

			n, limited, ok := p.MatchPrefix([]rune(test.region))
			require.Equal(t, test.ok, ok)
			if ok {
				require.Equal(t, test.n, n)
				require.Equal(t, test.limited, limited)
			}
		})
	}
}

func TestCompilePattern(t *testing.T) {
	p, err := streamscan.CompilePattern("a|b")
	require.NoError(t, err)
	require.Equal(t, "a|b", p.String())

	_, err = streamscan.CompilePattern("(")
	require.Error(t, err)

	require.Panics(t, func() {
		streamscan.MustCompilePattern("(")
	})
}
