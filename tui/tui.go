// Package tui provides the Bubble Tea terminal UI for linepad.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/linepad/config"
	"github.com/nathoo/linepad/history"
	"github.com/nathoo/linepad/workspace"
)

// Model is the Bubble Tea model for linepad. It owns the session's history
// store; each input line is one history cursor, closed on submit so its
// content lands in the store.
type Model struct {
	ws       *workspace.Workspace
	settings *config.Settings

	store  *history.Store
	cursor *history.Cursor

	viewport viewport.Model
	input    textinput.Model
	picker   *picker // non-nil while the buffer picker overlay is open

	width     int
	height    int
	ready     bool
	quitting  bool
	statusMsg string
}

// New creates a TUI model over the given workspace.
func New(ws *workspace.Workspace, settings *config.Settings) Model {
	ti := textinput.New()
	ti.Prompt = settings.Prompt
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	store := history.NewStore(settings.HistoryMax)
	return Model{
		ws:       ws,
		settings: settings,
		store:    store,
		cursor:   history.NewCursor(store),
		input:    ti,
	}
}

// Run starts the Bubble Tea program.
func Run(ws *workspace.Workspace, settings *config.Settings) error {
	m := New(ws, settings)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages (key presses, window resize).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateInput drives the history cursor from key presses. The textinput is
// display only: its value is set from the cursor after every operation.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cursor.Close()
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.handleEnter()

	case tea.KeyUp:
		line, _ := m.cursor.Prev()
		m.setInput(line)

	case tea.KeyDown:
		line, _ := m.cursor.Next()
		m.setInput(line)

	case tea.KeyEsc:
		m.cursor.Reset()
		m.setInput("")

	case tea.KeyBackspace:
		// A no-op while browsing history: only fresh input is editable.
		if line, ok := m.cursor.PopRune(); ok {
			m.setInput(line)
		}

	case tea.KeyCtrlB:
		m.picker = newPicker(m.ws.Entries(), m.settings.MaxResults)

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeySpace:
		m.setInput(m.cursor.PushRune(' '))

	case tea.KeyRunes:
		var line string
		for _, r := range msg.Runes {
			line = m.cursor.PushRune(r)
		}
		m.setInput(line)
	}

	return m, nil
}

// setInput mirrors the cursor's current value into the rendered input line.
func (m *Model) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

// handleEnter submits the input line: the cursor is closed (committing its
// content to history) and a fresh one opened for the next line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	line, _ := m.cursor.Current()
	line = strings.TrimSpace(line)

	if line == "" {
		// Nothing worth keeping; discard instead of committing.
		m.cursor.Reset()
	}
	m.cursor.Close()
	m.cursor = history.NewCursor(m.store)
	m.setInput("")

	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, "/") {
		msg, quit := m.handleMeta(line)
		m.statusMsg = msg
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.refreshViewport()
		return m, nil
	}

	buf := m.ws.Current()
	if buf == nil {
		m.statusMsg = "No buffer open."
		return m, nil
	}
	buf.Append(line)
	m.statusMsg = ""
	m.refreshViewport()
	return m, nil
}

// updatePicker drives the buffer picker overlay.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cursor.Close()
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.picker = nil

	case tea.KeyEnter:
		if entry, ok := m.picker.selection(); ok {
			m.ws.SwitchTo(entry.ID)
			m.statusMsg = fmt.Sprintf("Switched to %s.", entry)
			m.refreshViewport()
		}
		m.picker = nil

	case tea.KeyUp:
		m.picker.selectPrevious()

	case tea.KeyDown:
		m.picker.selectNext()

	case tea.KeyBackspace:
		m.picker.pop()

	case tea.KeySpace:
		m.picker.push(' ')

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.picker.push(r)
		}
	}

	return m, nil
}

// refreshViewport renders the active buffer into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	buf := m.ws.Current()
	if buf == nil {
		m.viewport.SetContent(styleEmptyHint.Render("No buffer open. /open <path> to start."))
		return
	}

	m.viewport.SetContent(styleBufferText.Render(strings.Join(buf.Lines, "\n")))
	m.viewport.GotoBottom()
}

// View renders the full layout: viewport (or picker) + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	body := m.viewport.View()
	if m.picker != nil {
		body = m.picker.view(m.width, m.viewport.Height)
	}

	return body + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches /-commands. Returns a status message and quit flag.
func (m *Model) handleMeta(line string) (string, bool) {
	parts := strings.Fields(line)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return "Goodbye.", true

	case "/open":
		if arg == "" {
			return "/open requires a path.", false
		}
		buf, err := m.ws.Open(arg)
		if err != nil {
			return fmt.Sprintf("Open failed: %v", err), false
		}
		return fmt.Sprintf("Opened #%d %s.", buf.ID, buf.Name()), false

	case "/write":
		buf := m.ws.Current()
		if buf == nil {
			return "No buffer open.", false
		}
		if err := m.ws.Write(buf, arg); err != nil {
			return fmt.Sprintf("Write failed: %v", err), false
		}
		return fmt.Sprintf("Wrote %s (%d lines).", buf.Name(), len(buf.Lines)), false

	case "/switch":
		id, err := strconv.Atoi(arg)
		if err != nil {
			return "/switch requires a buffer number.", false
		}
		if !m.ws.SwitchTo(id) {
			return fmt.Sprintf("No buffer #%d.", id), false
		}
		return fmt.Sprintf("Switched to #%d %s.", id, m.ws.Current().Name()), false

	case "/buffers":
		var names []string
		for _, e := range m.ws.Entries() {
			names = append(names, e.String())
		}
		if len(names) == 0 {
			return "No buffers are open.", false
		}
		return strings.Join(names, "  "), false

	case "/clear":
		buf := m.ws.Current()
		if buf == nil {
			return "No buffer open.", false
		}
		buf.Lines = nil
		return "Buffer cleared.", false

	case "/help":
		return "/open <path>  /write [path]  /buffers  /switch <n>  /clear  /quit — Ctrl+B: picker, Up/Down: history", false

	default:
		return fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd), false
	}
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
