package keys

import (
	"bufio"
	"io"
)

// Scanner yields the tokens of a reader, split by a bufio.SplitFunc, with
// their token positions.
type Scanner struct {
	scanner *bufio.Scanner
	pos     int
	done    bool
}

// NewScanner creates a source over r. A nil split defaults to bufio.ScanWords.
//
// Example:
//
//	lines := keys.NewScanner(file, bufio.ScanLines)
func NewScanner(r io.Reader, split bufio.SplitFunc) *Scanner {
	if split == nil {
		split = bufio.ScanWords
	}

	s := bufio.NewScanner(r)
	s.Split(split)
	return &Scanner{scanner: s}
}

func (s *Scanner) NextKey() (Indexed[string], bool) {
	if s.done {
		return Indexed[string]{}, false
	}

	if !s.scanner.Scan() {
		s.done = true
		return Indexed[string]{}, false
	}

	k := Indexed[string]{Index: s.pos, Value: s.scanner.Text()}
	s.pos++
	return k, true
}

// Err returns the first non-EOF read error. A read error also ends the
// source, so check Err after a run that stopped at end of input.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
