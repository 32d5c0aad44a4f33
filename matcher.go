package streamscan

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Matcher attempts pattern matches anchored at the start of a region of
// characters. Implementations must match against exactly the region they
// are given and must not search forward.
type Matcher interface {
	// MatchPrefix attempts an anchored match at the start of region.
	// n is the length of the match in characters. boundaryLimited
	// reports that the match extends to the very end of region, meaning
	// a longer match might be possible given more data; callers must
	// not treat such a match as final unless no more data can appear.
	MatchPrefix(region []rune) (n int, boundaryLimited, ok bool)
}

// Pattern is a Matcher backed by a regular expression, anchored at the
// start of the region it is tested against.
//
// The regexp package has no native notion of a region-limited match that
// reports whether it was cut short by the end of its input, so Pattern
// emulates it: the expression is matched against exactly the region, and a
// match ending at the region's last character is reported as boundary
// limited.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles expr into an anchored Pattern. The expression
// uses the regexp package's syntax.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, err
	}

	return &Pattern{expr: expr, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics if the expression
// cannot be compiled. It simplifies safe initialization of global
// patterns.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(`streamscan: MustCompilePattern(` + strconv.Quote(expr) + `): ` + err.Error())
	}
	return p
}

// MatchPrefix implements Matcher.
func (p *Pattern) MatchPrefix(region []rune) (n int, boundaryLimited, ok bool) {
	text := string(region)

	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return 0, false, false
	}

	// loc is in bytes, the caller works in runes.
	return utf8.RuneCountInString(text[:loc[1]]), loc[1] == len(text), true
}

// String returns the source expression of the pattern.
func (p *Pattern) String() string {
	return p.expr
}
