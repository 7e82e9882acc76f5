package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/linepad/config"
	"github.com/nathoo/linepad/workspace"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ws := workspace.New()
	ws.NewScratch()
	m := New(ws, config.Defaults())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_EnterAppendsToBuffer(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "hello")
	m = typeLine(t, m, "world")

	want := []string{"hello", "world"}
	if got := m.ws.Current().Lines; !reflect.DeepEqual(got, want) {
		t.Errorf("buffer lines = %v, want %v", got, want)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.input.Value())
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "first")
	m = typeLine(t, m, "second")

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = press(t, m, up)
	if got := m.input.Value(); got != "second" {
		t.Errorf("after up: input = %q, want \"second\"", got)
	}
	m = press(t, m, up)
	if got := m.input.Value(); got != "first" {
		t.Errorf("after up up: input = %q, want \"first\"", got)
	}
	m = press(t, m, down)
	if got := m.input.Value(); got != "second" {
		t.Errorf("after down: input = %q, want \"second\"", got)
	}
	// Forward past the most recent entry lands on the blank slot.
	m = press(t, m, down)
	if got := m.input.Value(); got != "" {
		t.Errorf("past newest: input = %q, want blank", got)
	}
}

func TestModel_BackspaceWhileBrowsingIsNoop(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "entry")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.input.Value(); got != "entry" {
		t.Errorf("input = %q, want \"entry\"", got)
	}
}

func TestModel_TypingWhileBrowsingStartsFresh(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "entry")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.input.Value(); got != "x" {
		t.Errorf("input = %q, want \"x\"", got)
	}
}

func TestModel_CommitThenNavigateSkipsOwnLine(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "older")

	// Typing then pressing up commits the draft and surfaces the entry
	// before it.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draft")})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "older" {
		t.Errorf("input = %q, want \"older\"", got)
	}
	if got := m.store.Lines(); !reflect.DeepEqual(got, []string{"older", "draft"}) {
		t.Errorf("store = %v, want [older draft]", got)
	}
}

func TestModel_MetaCommands(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "keep")
	m = typeLine(t, m, "/clear")

	if got := len(m.ws.Current().Lines); got != 0 {
		t.Errorf("buffer has %d lines after /clear, want 0", got)
	}

	m = typeLine(t, m, "/bogus")
	if m.statusMsg == "" {
		t.Error("unknown command produced no status message")
	}
}

func TestModel_QuitClosesCursor(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pending")})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("ctrl+c did not quit")
	}
	// The in-progress line was committed on the way out.
	if got := m.store.Lines(); !reflect.DeepEqual(got, []string{"pending"}) {
		t.Errorf("store = %v, want [pending]", got)
	}
}

func TestPicker_SearchAndSelect(t *testing.T) {
	ws := workspace.New()
	ws.NewScratch()
	ws.NewScratch()

	p := newPicker(ws.Entries(), 10)
	if len(p.results) != 2 {
		t.Fatalf("empty query: %d results, want 2", len(p.results))
	}

	p.selectNext()
	entry, ok := p.selection()
	if !ok || entry.ID != 2 {
		t.Errorf("selection = (%v, %v), want entry #2", entry, ok)
	}
	p.selectNext() // clamped at the end
	if entry, _ := p.selection(); entry.ID != 2 {
		t.Errorf("selection moved past the last row: %v", entry)
	}

	p.push('z')
	if len(p.results) != 0 {
		t.Errorf("query \"z\": %d results, want 0", len(p.results))
	}
	if p.message() != "No matching entries found." {
		t.Errorf("message = %q", p.message())
	}
	if _, ok := p.selection(); ok {
		t.Error("selection resolved with no results")
	}

	p.pop()
	if len(p.results) != 2 {
		t.Errorf("after pop: %d results, want 2", len(p.results))
	}
}

func TestPicker_EmptyWorkspaceMessage(t *testing.T) {
	p := newPicker(nil, 10)
	if p.message() != "No buffers are open." {
		t.Errorf("message = %q", p.message())
	}
}

func TestModel_PickerSwitchesBuffer(t *testing.T) {
	ws := workspace.New()
	ws.NewScratch()
	ws.NewScratch()
	ws.SwitchTo(1)

	m := New(ws, config.Defaults())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if m.picker == nil {
		t.Fatal("ctrl+b did not open the picker")
	}
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.picker != nil {
		t.Error("picker still open after enter")
	}
	if got := m.ws.Current().ID; got != 2 {
		t.Errorf("current buffer = #%d, want #2", got)
	}
}
