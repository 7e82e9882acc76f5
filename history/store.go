// Package history provides the input line history for linepad: a bounded,
// deduplicating store of previously entered lines plus a per-session cursor
// that supports shell-style up/down navigation over it.
package history

import "math"

// Store is a capacity-bounded list of unique lines, oldest at index 0 and
// most recently used at the tail. Adding a line that is already present
// promotes it to the tail instead of duplicating it; adding past capacity
// evicts the oldest line.
//
// A Store is created once per session and shared by every Cursor opened
// against it. It is not safe for concurrent use.
type Store struct {
	lines []string
	max   int
}

// NewStore creates a store holding at most max lines. A max of zero is
// valid and puts the store in no-history mode: cursors opened against it
// never read or write history.
func NewStore(max int) *Store {
	return &Store{max: max}
}

// Add inserts line at the tail, or promotes it to the tail if an equal
// line is already stored. When the store is full the oldest line is
// evicted first, so the bound is never exceeded.
//
// Calling Add on a zero-capacity store is a caller bug; cursors check
// noHistory before ever committing. The call is a guaranteed no-op.
func (s *Store) Add(line string) {
	if s.max == 0 {
		return
	}

	for i, l := range s.lines {
		if l == line {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.lines = append(s.lines, line)
			return
		}
	}

	if len(s.lines) == s.max {
		s.lines = s.lines[1:]
	}
	s.lines = append(s.lines, line)
}

// Get resolves a signed navigation offset to a stored line. The offset
// space is cyclic with period len+1: the extra slot is the blank line
// between the newest and oldest entries and always resolves to ("", false),
// as do offset 0 and an empty store.
//
// Positive offsets walk backward from the tail (1 is the most recent line,
// len the oldest); negative offsets walk forward from the head (-1 is the
// oldest, -len the most recent). Offsets of any magnitude wrap.
func (s *Store) Get(pos int) (string, bool) {
	n := len(s.lines)
	if n == 0 || pos == 0 {
		return "", false
	}
	if pos < 0 {
		// Negating math.MinInt overflows; saturate to the next value.
		// The cyclic structure is preserved at the boundary.
		if pos == math.MinInt {
			pos = math.MinInt + 1
		}
		p := (-pos) % (n + 1)
		if p == 0 {
			return "", false
		}
		return s.lines[p-1], true
	}
	p := pos % (n + 1)
	if p == 0 {
		return "", false
	}
	return s.lines[n-p], true
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	return len(s.lines)
}

// Cap returns the store's fixed capacity.
func (s *Store) Cap() int {
	return s.max
}

// Lines returns a copy of the stored lines, oldest first.
func (s *Store) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
