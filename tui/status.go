package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// active buffer, its dirty marker, the last command result, and counts.
func (m Model) renderStatusBar() string {
	left := " No buffer"
	buf := m.ws.Current()
	if buf != nil {
		dirty := ""
		if buf.Dirty() {
			dirty = " " + styleDirty.Render("[+]")
		}
		left = fmt.Sprintf(" #%d %s%s", buf.ID, buf.Name(), dirty)
	}
	if m.statusMsg != "" {
		left += " | " + m.statusMsg
	}

	right := fmt.Sprintf("%d buffers ", m.ws.Len())
	if buf != nil {
		right = fmt.Sprintf("L:%d | %s", len(buf.Lines), right)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
