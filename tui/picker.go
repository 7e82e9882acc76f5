package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/nathoo/linepad/matching"
	"github.com/nathoo/linepad/workspace"
)

// picker is the fuzzy buffer-picker overlay: a query string, the ranked
// results for it, and the highlighted row.
type picker struct {
	query    string
	all      []workspace.Entry
	results  []workspace.Entry
	selected int
	limit    int
}

func newPicker(entries []workspace.Entry, limit int) *picker {
	p := &picker{all: entries, limit: limit}
	p.search()
	return p
}

// search recomputes results for the current query and resets the selection.
func (p *picker) search() {
	p.results = matching.Find(p.query, p.all, p.limit)
	p.selected = 0
}

func (p *picker) push(r rune) {
	p.query += string(r)
	p.search()
}

func (p *picker) pop() {
	if p.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(p.query)
	p.query = p.query[:len(p.query)-size]
	p.search()
}

func (p *picker) selectPrevious() {
	if p.selected > 0 {
		p.selected--
	}
}

func (p *picker) selectNext() {
	if p.selected < len(p.results)-1 {
		p.selected++
	}
}

// selection returns the highlighted entry, if any.
func (p *picker) selection() (workspace.Entry, bool) {
	if len(p.results) == 0 {
		return workspace.Entry{}, false
	}
	return p.results[p.selected], true
}

// message returns the placeholder text shown when there are no results.
func (p *picker) message() string {
	if len(p.results) > 0 {
		return ""
	}
	if len(p.all) == 0 {
		return "No buffers are open."
	}
	return "No matching entries found."
}

// view renders the overlay into the viewport area.
func (p *picker) view(width, height int) string {
	lines := make([]string, 0, height)
	lines = append(lines, stylePickerTitle.Render(" Switch buffer: "+p.query+"▏"))

	if msg := p.message(); msg != "" {
		lines = append(lines, stylePickerMessage.Render("  "+msg))
	}
	for i, e := range p.results {
		row := "  " + e.String()
		if i == p.selected {
			row = stylePickerSelected.Render("> " + e.String())
		}
		lines = append(lines, row)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}
