package streamscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultCapacity is the initial buffer capacity used by NewScanner.
const DefaultCapacity = 128

// ErrEndOfInput is returned by Peek and Next when a character is requested
// but none remains and the source is exhausted.
var ErrEndOfInput = errors.New("end of input")

// Scanner reads characters from a Source and consumes them by pattern.
// It buffers characters internally so that callers can match patterns
// against the stream without managing buffering or partial reads
// themselves.
//
// A Scanner is not safe for concurrent use: every operation mutates the
// internal cursor and buffer.
type Scanner struct {
	src Source

	// buf[start:end] is unconsumed data read from the source.
	// buf[end:] is free space.
	buf   []rune
	start int
	end   int
	eof   bool
}

// NewScanner returns a new Scanner reading from src, with the default
// buffer capacity.
func NewScanner(src Source) *Scanner {
	return NewScannerSize(src, DefaultCapacity)
}

// NewScannerSize returns a new Scanner reading from src with the given
// initial buffer capacity. The buffer grows as needed during Read; the
// capacity given here bounds the horizon usable with ReadRepeatedly.
func NewScannerSize(src Source, capacity int) *Scanner {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Scanner{
		src: src,
		buf: make([]rune, capacity),
	}
}

// Read consumes and returns the longest prefix of the remaining input
// matched by m at the current position.
//
// A match whose end coincides with the edge of buffered data is not
// trusted until the source is exhausted: more input could extend it. Read
// keeps pulling from the source, doubling the buffer whenever it fills up,
// until the match is confirmed.
//
// It returns an empty string if m matches zero characters at the current
// position, or if the source is exhausted and m cannot match at all.
func (s *Scanner) Read(m Matcher) (string, error) {
	for {
		n, limited, ok := m.MatchPrefix(s.buf[s.start:s.end])
		if ok && (!limited || s.eof) {
			text := string(s.buf[s.start : s.start+n])
			s.start += n
			return text, nil
		}
		if s.eof {
			// No match is possible anymore.
			return "", nil
		}

		if s.end == len(s.buf) {
			grown := make([]rune, len(s.buf)*2)
			copy(grown, s.buf[:s.end])
			s.buf = grown
		}

		if err := s.fill(); err != nil {
			return "", err
		}
	}
}

// ReadRepeatedly applies m repeatedly at the current position, consuming
// each successive match, until m fails to match. It returns the
// concatenation of all consumed matches. Since the pattern is applied
// repeatedly, a pattern such as "a{1}" may consume more than one
// character; use Read if that is undesirable.
//
// horizon is the minimum number of unconsumed characters that must be
// buffered before each match attempt. The only situation in which a match
// is attempted with fewer characters is when the source is exhausted, in
// which case no further characters can appear anyway. A pattern that needs
// to see up to k characters to decide is therefore safe with horizon k.
//
// The horizon must not exceed the scanner's buffer capacity; violating
// this is a programming error and panics.
//
// If the source fails mid-way, the text consumed so far is returned
// together with the error.
func (s *Scanner) ReadRepeatedly(m Matcher, horizon int) (string, error) {
	if horizon > len(s.buf) {
		panic(fmt.Sprintf("streamscan: horizon %d exceeds buffer capacity %d", horizon, len(s.buf)))
	}

	var out strings.Builder

	for {
		// Reclaim consumed space if a full horizon no longer fits
		// after the cursor. Shifting is enough here: the horizon is
		// bounded by the capacity, so no reallocation is needed.
		if len(s.buf)-s.start < horizon {
			copy(s.buf, s.buf[s.start:s.end])
			s.end -= s.start
			s.start = 0
		}

		for s.end-s.start < horizon && !s.eof {
			if err := s.fill(); err != nil {
				return out.String(), err
			}
		}

		for {
			n, _, ok := m.MatchPrefix(s.buf[s.start:s.end])
			if !ok || n == 0 {
				// Nothing left to match.
				return out.String(), nil
			}
			out.WriteString(string(s.buf[s.start : s.start+n]))
			s.start += n

			// Dropping below the horizon forces a re-fill, unless the
			// source is exhausted: no more characters can appear, so
			// the remainder is already fully accurate.
			if s.end-s.start < horizon && !s.eof {
				break
			}
		}
	}
}

// Skip applies m repeatedly at the current position and discards every
// match, until m fails to match or matches zero characters. It is the
// discarding equivalent of ReadRepeatedly, using the whole buffer as its
// window: consumed data is dropped wholesale on each refill, so no output
// is accumulated and no compaction is needed.
func (s *Scanner) Skip(m Matcher) error {
	for {
		for s.start < s.end {
			n, _, ok := m.MatchPrefix(s.buf[s.start:s.end])
			if !ok || n == 0 {
				return nil
			}
			s.start += n
		}

		if s.eof {
			return nil
		}

		// Everything buffered has been consumed, start over.
		s.start, s.end = 0, 0
		if err := s.fill(); err != nil {
			return err
		}
	}
}

// Peek returns the next unconsumed character without consuming it,
// pulling from the source if nothing is buffered. It returns ErrEndOfInput
// if the source is exhausted and no character remains.
func (s *Scanner) Peek() (rune, error) {
	for s.start == s.end {
		if s.eof {
			return 0, ErrEndOfInput
		}
		s.start, s.end = 0, 0
		if err := s.fill(); err != nil {
			return 0, err
		}
	}

	return s.buf[s.start], nil
}

// Next consumes and returns the next character. It returns ErrEndOfInput
// if the source is exhausted and no character remains.
func (s *Scanner) Next() (rune, error) {
	c, err := s.Peek()
	if err != nil {
		return 0, err
	}
	s.start++
	return c, nil
}

// AtEnd reports whether the scanner has consumed all input, pulling from
// the source first if the buffer looks empty. Once it returns true, it
// returns true forever.
func (s *Scanner) AtEnd() (bool, error) {
	for s.start == s.end && !s.eof {
		s.start, s.end = 0, 0
		if err := s.fill(); err != nil {
			return false, err
		}
	}

	return s.eof && s.start == s.end, nil
}

// fill pulls once from the source into free buffer space. This is the only
// point of contact with the source. It may block for as long as the source
// does. Reaching end of input sets eof and is not an error; any other
// source error is returned unchanged, with the cursors reflecting whatever
// the source produced before failing.
func (s *Scanner) fill() error {
	n, err := s.src.ReadRunes(s.buf[s.end:])
	s.end += n
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
			return nil
		}
		return err
	}
	return nil
}
