// Package cli provides the plain terminal loop for linepad, used for
// script playback and when stdout is not a terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/linepad/config"
	"github.com/nathoo/linepad/history"
	"github.com/nathoo/linepad/workspace"
)

// CLI handles line-at-a-time interaction without the TUI. Arrow-key
// navigation is not available here, but every accepted line still runs
// through a history cursor so the session's history is populated the same
// way as in the TUI.
type CLI struct {
	Workspace *workspace.Workspace
	Settings  *config.Settings
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	store *history.Store
}

// New creates a CLI over the given workspace.
func New(ws *workspace.Workspace, settings *config.Settings) *CLI {
	return &CLI{
		Workspace: ws,
		Settings:  settings,
		In:        os.Stdin,
		Out:       os.Stdout,
		store:     history.NewStore(settings.HistoryMax),
	}
}

// Run starts the loop: prompt, read, dispatch, repeat until EOF or /quit.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)
	for {
		c.print(c.Settings.Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(line, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(line)
		}

		quit := false
		history.Scoped(c.store, line, func(*history.Cursor) {
			quit = c.dispatch(line)
		})
		if quit {
			return
		}
	}
}

// dispatch handles one input line. Returns true on /quit.
func (c *CLI) dispatch(line string) bool {
	if !strings.HasPrefix(line, "/") {
		buf := c.Workspace.Current()
		if buf == nil {
			c.printLine("No buffer open. /open <path> to start.")
			return false
		}
		buf.Append(line)
		return false
	}

	parts := strings.Fields(line)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printLine("Goodbye.")
		return true

	case "/open":
		if arg == "" {
			c.printLine("/open requires a path.")
			return false
		}
		buf, err := c.Workspace.Open(arg)
		if err != nil {
			c.printLine(fmt.Sprintf("Open failed: %v", err))
			return false
		}
		c.printLine(fmt.Sprintf("Opened #%d %s.", buf.ID, buf.Name()))

	case "/write":
		buf := c.Workspace.Current()
		if buf == nil {
			c.printLine("No buffer open.")
			return false
		}
		if err := c.Workspace.Write(buf, arg); err != nil {
			c.printLine(fmt.Sprintf("Write failed: %v", err))
			return false
		}
		c.printLine(fmt.Sprintf("Wrote %s (%d lines).", buf.Name(), len(buf.Lines)))

	case "/switch":
		id, err := strconv.Atoi(arg)
		if err != nil {
			c.printLine("/switch requires a buffer number.")
			return false
		}
		if !c.Workspace.SwitchTo(id) {
			c.printLine(fmt.Sprintf("No buffer #%d.", id))
			return false
		}
		c.printLine(fmt.Sprintf("Switched to #%d %s.", id, c.Workspace.Current().Name()))

	case "/buffers":
		entries := c.Workspace.Entries()
		if len(entries) == 0 {
			c.printLine("No buffers are open.")
			return false
		}
		for _, e := range entries {
			c.printLine(e.String())
		}

	case "/show":
		buf := c.Workspace.Current()
		if buf == nil {
			c.printLine("No buffer open.")
			return false
		}
		for _, l := range buf.Lines {
			c.printLine(l)
		}

	case "/clear":
		buf := c.Workspace.Current()
		if buf == nil {
			c.printLine("No buffer open.")
			return false
		}
		buf.Lines = nil
		c.printLine("Buffer cleared.")

	case "/history":
		for _, l := range c.store.Lines() {
			c.printLine(l)
		}

	case "/help":
		c.printHelp()

	default:
		c.printLine(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
	return false
}

func (c *CLI) printHelp() {
	for _, l := range []string{
		"Commands:",
		"  /open <path>    — Open a file as a buffer",
		"  /write [path]   — Write the current buffer",
		"  /buffers        — List open buffers",
		"  /switch <n>     — Switch to buffer n",
		"  /show           — Print the current buffer",
		"  /clear          — Clear the current buffer",
		"  /history        — Print the input history",
		"  /quit           — Exit",
		"",
		"Anything else is appended to the current buffer.",
	} {
		c.printLine(l)
	}
}

func (c *CLI) print(s string) {
	fmt.Fprint(c.Out, s)
}

func (c *CLI) printLine(s string) {
	fmt.Fprintln(c.Out, s)
}
