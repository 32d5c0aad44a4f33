package streamscan

import (
	"bufio"
	"io"
)

// Source is an incremental producer of characters. Chunks may be of any
// size, including empty, and a call may block until characters become
// available.
type Source interface {
	// ReadRunes writes up to len(p) characters into p and returns the
	// number written. It returns io.EOF once no more characters will
	// ever be produced; every subsequent call must keep returning
	// io.EOF. A call may return both characters and an error, in which
	// case the characters are valid and must be handled first.
	ReadRunes(p []rune) (int, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource returns a Source decoding UTF-8 characters from r.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadRunes(p []rune) (int, error) {
	var n int

	for n < len(p) {
		// Block for the first character only; afterwards hand back
		// whatever is already decodable.
		if n > 0 && s.r.Buffered() == 0 {
			break
		}
		c, _, err := s.r.ReadRune()
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
	}

	return n, nil
}

type stringSource struct {
	rest []rune
}

// NewStringSource returns a Source yielding the characters of str. Each
// call produces as many characters as fit in the destination.
func NewStringSource(str string) Source {
	return &stringSource{rest: []rune(str)}
}

func (s *stringSource) ReadRunes(p []rune) (int, error) {
	if len(s.rest) == 0 {
		return 0, io.EOF
	}

	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n, nil
}

type channelSource struct {
	ch <-chan rune
}

// NewChannelSource returns a Source receiving characters from ch. A call
// blocks until at least one character is available, then drains whatever
// else is immediately ready. Closing the channel signals end of input.
func NewChannelSource(ch <-chan rune) Source {
	return &channelSource{ch: ch}
}

func (s *channelSource) ReadRunes(p []rune) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	c, ok := <-s.ch
	if !ok {
		return 0, io.EOF
	}
	p[0] = c
	n := 1

	for n < len(p) {
		select {
		case c, ok := <-s.ch:
			if !ok {
				return n, io.EOF
			}
			p[n] = c
			n++
		default:
			return n, nil
		}
	}

	return n, nil
}
