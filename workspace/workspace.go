// Package workspace tracks the set of open buffers: their stable numeric
// ids, optional file paths, and contents. It is the data source behind the
// buffer picker and the target of the input line's appended text.
package workspace

import (
	"fmt"
	"os"
	"strings"
)

// unnamed is shown for buffers that have no backing file.
const unnamed = "<scratch>"

// Buffer is one open buffer. The ID is assigned at open time and stays
// stable for the life of the workspace, even as other buffers come and go.
type Buffer struct {
	ID    int
	Path  string // empty for scratch buffers
	Lines []string
	dirty bool
}

// Append adds a line to the end of the buffer.
func (b *Buffer) Append(line string) {
	b.Lines = append(b.Lines, line)
	b.dirty = true
}

// Contents returns the buffer as a single newline-terminated string, or
// "" when empty.
func (b *Buffer) Contents() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return strings.Join(b.Lines, "\n") + "\n"
}

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Name returns the buffer's display name: its path, or a placeholder for
// scratch buffers.
func (b *Buffer) Name() string {
	if b.Path == "" {
		return unnamed
	}
	return b.Path
}

// Entry is one row of the open-buffer listing handed to the picker.
type Entry struct {
	ID   int
	Path string // empty for scratch buffers
	name string
}

// SearchString returns the text the picker matches queries against.
func (e Entry) SearchString() string {
	return e.name
}

func (e Entry) String() string {
	return fmt.Sprintf("#%d %s", e.ID, e.name)
}

// Workspace is the set of open buffers plus the currently active one.
// Not safe for concurrent use.
type Workspace struct {
	buffers []*Buffer
	nextID  int
	current int // index into buffers; -1 when none open
}

// New creates an empty workspace.
func New() *Workspace {
	return &Workspace{nextID: 1, current: -1}
}

// Open opens path as a new buffer and makes it current. If the file
// exists its lines are loaded; otherwise the buffer starts empty and
// unsaved. Opening a path that is already open switches to it instead.
func (w *Workspace) Open(path string) (*Buffer, error) {
	for i, b := range w.buffers {
		if b.Path == path && path != "" {
			w.current = i
			return b, nil
		}
	}

	b := &Buffer{ID: w.nextID, Path: path}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		b.Lines = splitLines(string(data))
	case os.IsNotExist(err):
		b.dirty = true
	default:
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	w.nextID++
	w.buffers = append(w.buffers, b)
	w.current = len(w.buffers) - 1
	return b, nil
}

// NewScratch opens an empty unnamed buffer and makes it current.
func (w *Workspace) NewScratch() *Buffer {
	b := &Buffer{ID: w.nextID}
	w.nextID++
	w.buffers = append(w.buffers, b)
	w.current = len(w.buffers) - 1
	return b
}

// Current returns the active buffer, or nil when none is open.
func (w *Workspace) Current() *Buffer {
	if w.current < 0 {
		return nil
	}
	return w.buffers[w.current]
}

// SwitchTo makes the buffer with the given id current. It reports whether
// the id was found.
func (w *Workspace) SwitchTo(id int) bool {
	for i, b := range w.buffers {
		if b.ID == id {
			w.current = i
			return true
		}
	}
	return false
}

// Len returns the number of open buffers.
func (w *Workspace) Len() int {
	return len(w.buffers)
}

// Entries lists the open buffers in open order, for display and matching.
func (w *Workspace) Entries() []Entry {
	out := make([]Entry, len(w.buffers))
	for i, b := range w.buffers {
		out[i] = Entry{ID: b.ID, Path: b.Path, name: b.Name()}
	}
	return out
}

// Write saves the buffer to path (or its own path when path is empty) and
// clears the dirty flag. A scratch buffer written to a path keeps it.
func (w *Workspace) Write(b *Buffer, path string) error {
	if path == "" {
		path = b.Path
	}
	if path == "" {
		return fmt.Errorf("buffer #%d has no path", b.ID)
	}

	if err := os.WriteFile(path, []byte(b.Contents()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	b.Path = path
	b.dirty = false
	return nil
}

// splitLines splits file contents into lines, dropping the trailing
// newline's empty remainder so a round trip through Contents is stable.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
