/*
Package streamscan implements a buffered, pattern-driven scanner over
incremental character sources.

A Scanner repeatedly answers one question for its caller: "consume as much
of the input as matches this pattern". The caller never deals with
buffering, buffer growth or partial reads; the Scanner pulls characters
from its Source on demand and retries a match until its outcome can no
longer be changed by more input.

It serves a similar purpose to bufio.Scanner, but it is not built around
delimiters: consumption is driven entirely by anchored pattern matches.

A Source yields characters in chunks of arbitrary size and signals end of
input with io.EOF. Once end of input is signaled it is final. Adapters are
provided for io.Reader byte streams, in-memory strings, and channels; any
other producer can implement the one-method interface directly.

Patterns are applied through the Matcher interface, which performs matches
anchored at the start of a region of characters and reports whether the
match was limited by the region's boundary. Pattern adapts the standard
regexp package to this interface. The boundary information is what lets
the Scanner avoid truncated matches: a pattern like `a*` matched against
"aa" is not trusted while a third 'a' may still be in flight.

Read consumes a single longest anchored match, growing the buffer without
bound if the match demands it. ReadRepeatedly applies a pattern over and
over within a fixed lookahead window (the horizon), which keeps memory
bounded on arbitrarily long streams. Skip does the same as ReadRepeatedly
but discards the matched text. Peek, Next and AtEnd cover the
single-character cases.

Scanners are not safe for concurrent use.
*/
package streamscan
