// Package testutil provides scanner sources with controllable delivery
// for tests.
package testutil

import "io"

// ChunkSource yields predefined chunks of characters, one chunk per call,
// then signals end of input. A chunk larger than the destination is
// carried over to the next call; an empty chunk yields zero characters
// without signaling end of input.
type ChunkSource struct {
	chunks  []string
	pending []rune
}

// NewChunkSource returns a ChunkSource yielding the given chunks in order.
func NewChunkSource(chunks ...string) *ChunkSource {
	return &ChunkSource{chunks: chunks}
}

func (s *ChunkSource) ReadRunes(p []rune) (int, error) {
	if len(s.pending) == 0 {
		if len(s.chunks) == 0 {
			return 0, io.EOF
		}
		s.pending = []rune(s.chunks[0])
		s.chunks = s.chunks[1:]
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// FailSource yields a prefix of characters and then keeps failing with a
// fixed error.
type FailSource struct {
	pending []rune
	err     error
}

// NewFailSource returns a FailSource yielding the characters of prefix
// before failing with err on every subsequent call.
func NewFailSource(prefix string, err error) *FailSource {
	return &FailSource{pending: []rune(prefix), err: err}
}

func (s *FailSource) ReadRunes(p []rune) (int, error) {
	if len(s.pending) == 0 {
		return 0, s.err
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}
