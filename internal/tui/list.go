package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each scope occupies.
const linesPerItem = 2

// renderList renders the left panel: the scope list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No participants")
	}

	var lines []string
	for i, it := range m.visible {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		shown := it.id == m.shown
		lines = append(lines, formatScopeLine(it, width, i == m.cursor, shown)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatScopeLine formats a single scope as two lines:
//
//	line 1: [>] name [*]
//	line 2:    N messages, P% (dimmed)
func formatScopeLine(it scopeItem, width int, selected, shown bool) []string {
	name := strings.ReplaceAll(it.scope.String(), "\n", " ")
	nameMax := width - 4 // cursor prefix + shown marker
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "…")
	}

	switch {
	case it.scope.IsOverall():
		name = styleListOverall.Render(name)
	case selected:
		name = styleListSelected.Render(name)
	default:
		name = styleListNormal.Render(name)
	}
	if shown {
		name += styleShown.Render(" *")
	}

	line1 := "  " + name
	if selected {
		line1 = styleListSelected.Render("> ") + name
	}

	detail := fmt.Sprintf("%d messages", it.messages)
	if !it.scope.IsOverall() {
		detail += fmt.Sprintf(", %.2f%%", it.percent)
	}
	line2 := "    " + styleListDetail.Render(detail)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
