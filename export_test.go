package streamscan

// Cursor exposes the internal cursor for tests.
func Cursor(s *Scanner) (start, end int) {
	return s.start, s.end
}

// Capacity exposes the current buffer capacity for tests.
func Capacity(s *Scanner) int {
	return len(s.buf)
}
