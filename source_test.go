package streamscan_test

import (
	"io"
	"strings"
	"testing"

	"github.com/chaisql/streamscan"
	"github.com/stretchr/testify/require"
)

// drain reads from src into chunks of the given size until end of input,
// returning everything read.
func drain(t *testing.T, src streamscan.Source, size int) string {
	t.Helper()

	var out []rune
	buf := make([]rune, size)
	for {
		n, err := src.ReadRunes(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return string(out)
		}
	}
}

func TestReaderSource(t *testing.T) {
	t.Run("decodes runes", func(t *testing.T) {
		src := streamscan.NewReaderSource(strings.NewReader("héllo, 世界"))
		require.Equal(t, "héllo, 世界", drain(t, src, 3))
	})

	t.Run("end of input is final", func(t *testing.T) {
		src := streamscan.NewReaderSource(strings.NewReader("a"))
		drain(t, src, 4)

		buf := make([]rune, 4)
		for i := 0; i < 3; i++ {
			n, err := src.ReadRunes(buf)
			require.Zero(t, n)
			require.ErrorIs(t, err, io.EOF)
		}
	})
}

func TestStringSource(t *testing.T) {
	src := streamscan.NewStringSource("abcde")

	buf := make([]rune, 2)
	n, err := src.ReadRunes(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "ab", string(buf[:n]))

	require.Equal(t, "cde", drain(t, src, 2))

	n, err = src.ReadRunes(buf)
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestChannelSource(t *testing.T) {
	t.Run("drains ready characters", func(t *testing.T) {
		ch := make(chan rune, 3)
		ch <- 'a'
		ch <- 'b'
		ch <- 'c'

		src := streamscan.NewChannelSource(ch)

		buf := make([]rune, 8)
		n, err := src.ReadRunes(buf)
		require.NoError(t, err)
		require.Equal(t, "abc", string(buf[:n]))
	})

	t.Run("close signals end of input", func(t *testing.T) {
		ch := make(chan rune, 2)
		ch <- 'a'
		close(ch)

		src := streamscan.NewChannelSource(ch)
		require.Equal(t, "a", drain(t, src, 4))

		buf := make([]rune, 4)
		for i := 0; i < 3; i++ {
			n, err := src.ReadRunes(buf)
			require.Zero(t, n)
			require.ErrorIs(t, err, io.EOF)
		}
	})
}
