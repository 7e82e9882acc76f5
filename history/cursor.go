package history

import "unicode/utf8"

// cursorState discriminates what the cursor currently holds.
type cursorState int

const (
	// stateEmpty: no input and no navigation in progress.
	stateEmpty cursorState = iota
	// stateText: an in-progress line, not yet part of history.
	stateText
	// statePos: a signed offset into the store's cyclic index space.
	statePos
)

// Cursor is one editing session over a shared Store. It holds either the
// line being typed or a navigation position in history, and commits its
// final content into the store when closed.
//
// Cursors are created per input line and must be closed on every exit
// path; Close after the first Close is a no-op. Use Scoped when the
// session is bracketed by a single function.
type Cursor struct {
	store     *Store
	state     cursorState
	text      string // valid when state == stateText
	pos       int    // valid when state == statePos
	noHistory bool   // store capacity is zero; never touch history
}

// NewCursor opens an empty cursor over s.
func NewCursor(s *Store) *Cursor {
	return &Cursor{store: s, noHistory: s.max == 0}
}

// Scoped opens a cursor over s seeded with seed (ignored when empty),
// passes it to fn, and closes it on the way out regardless of how fn
// returns. This is the commit-on-disposal contract in wrapper form.
func Scoped(s *Store, seed string, fn func(*Cursor)) {
	c := NewCursor(s)
	if seed != "" {
		c.SetText(seed)
	}
	defer c.Close()
	fn(c)
}

// SetText replaces the cursor's content with text. Whatever was held
// before — in-progress input or a navigation position — is discarded
// without being committed.
func (c *Cursor) SetText(text string) {
	c.state = stateText
	c.text = text
	c.pos = 0
}

// Reset discards the cursor's content without committing anything.
func (c *Cursor) Reset() {
	c.state = stateEmpty
	c.text = ""
	c.pos = 0
}

// PushRune appends r to the line being typed and returns the new line.
// If the cursor was empty or navigating, r starts a fresh line; a
// browsed history entry is left untouched in the store.
func (c *Cursor) PushRune(r rune) string {
	if c.state == stateText {
		c.text += string(r)
	} else {
		c.state = stateText
		c.text = string(r)
		c.pos = 0
	}
	return c.text
}

// PopRune removes the last rune from the line being typed and returns the
// remaining line, which may be empty. While empty or navigating there is
// nothing to delete and PopRune reports ("", false).
func (c *Cursor) PopRune() (string, bool) {
	if c.state != stateText {
		return "", false
	}
	if c.text != "" {
		_, size := utf8.DecodeLastRuneInString(c.text)
		c.text = c.text[:len(c.text)-size]
	}
	return c.text, true
}

// Current returns what the cursor resolves to right now: the line being
// typed, the history entry at the navigation position, or ("", false)
// when there is neither.
func (c *Cursor) Current() (string, bool) {
	switch c.state {
	case stateText:
		return c.text, true
	case statePos:
		return c.store.Get(c.pos)
	default:
		return "", false
	}
}

// Prev moves one step backward in history (toward older entries) and
// returns the newly current value. An in-progress line is committed
// first, and the step lands past the just-committed entry.
func (c *Cursor) Prev() (string, bool) {
	if c.noHistory {
		return c.Current()
	}

	switch c.state {
	case stateEmpty:
		c.state = statePos
		c.pos = 1
	case stateText:
		c.store.Add(c.text)
		c.state = statePos
		c.text = ""
		c.pos = 2
	case statePos:
		c.pos++
	}
	return c.Current()
}

// Next moves one step forward in history (toward newer entries) and
// returns the newly current value. An in-progress line is committed
// first, leaving the blank slot current, so the first Next after typing
// reads as no input.
func (c *Cursor) Next() (string, bool) {
	if c.noHistory {
		return c.Current()
	}

	switch c.state {
	case stateEmpty:
		c.state = statePos
		c.pos = -1
	case stateText:
		c.store.Add(c.text)
		c.state = statePos
		c.text = ""
		c.pos = 0
	case statePos:
		c.pos--
	}
	return c.Current()
}

// Close ends the editing session: the line being typed is committed into
// the store, and a history entry being browsed is re-promoted. The cursor
// is left empty, so closing again does nothing.
func (c *Cursor) Close() {
	if c.noHistory {
		c.Reset()
		return
	}

	switch c.state {
	case stateText:
		c.store.Add(c.text)
	case statePos:
		if line, ok := c.store.Get(c.pos); ok {
			c.store.Add(line)
		}
	}
	c.Reset()
}
