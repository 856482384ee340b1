package tui

import (
	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reportRenderedMsg is sent when an async analysis completes.
type reportRenderedMsg struct {
	item    int
	content string
}

// analyzeCmd returns a tea.Cmd that recomputes the report for it.
func analyzeCmd(c *parse.Corpus, it scopeItem, opts analyze.Options, ropts render.Options) tea.Cmd {
	return func() tea.Msg {
		r := analyze.Run(it.scope, c, opts)
		return reportRenderedMsg{
			item:    it.id,
			content: render.Report(r, ropts),
		}
	}
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
