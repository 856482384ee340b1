package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const debounceDelay = 200 * time.Millisecond

// message types

type debounceTickMsg struct {
	item int
}

// scopeItem is one row of the scope list.
type scopeItem struct {
	id       int // position in model.items
	scope    analyze.Scope
	messages int
	percent  float64
}

// model

type model struct {
	corpus      *parse.Corpus
	opts        analyze.Options
	renderOpts  render.Options
	items       []scopeItem
	visible     []scopeItem
	filter      string
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	pending     int // item whose report is being computed, -1 for none
	shown       int // item whose report is in the preview, -1 for none
	content     string
	status      string
	width       int
	height      int
	ready       bool
	quitting    bool
}

// scopeItems lists Overall followed by every participant in name order.
func scopeItems(c *parse.Corpus) []scopeItem {
	counts := make(map[string]analyze.UserActivity)
	for _, u := range analyze.MostBusyUsers(c) {
		counts[u.Name] = u
	}

	items := []scopeItem{{id: 0, scope: analyze.Overall, messages: c.Len(), percent: 100}}
	for _, name := range c.Participants() {
		u := counts[name]
		items = append(items, scopeItem{id: len(items), scope: analyze.User(name), messages: u.Messages, percent: u.Percent})
	}
	return items
}

func initialModel(c *parse.Corpus, opts analyze.Options, ropts render.Options, initial analyze.Scope) model {
	ti := textinput.New()
	ti.Placeholder = "Filter participants..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	items := scopeItems(c)
	m := model{
		corpus:      c,
		opts:        opts,
		renderOpts:  ropts,
		items:       items,
		visible:     items,
		filterInput: ti,
		preview:     viewport.New(0, 0),
		pending:     -1,
		shown:       -1,
	}
	for i, it := range items {
		if it.scope == initial {
			m.cursor = i
		}
	}
	return m
}

// Run starts the dashboard on initial and blocks until it exits.
func Run(c *parse.Corpus, opts analyze.Options, ropts render.Options, initial analyze.Scope) error {
	m := initialModel(c, opts, ropts, initial)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Init triggers the first analysis.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.analyzeSelected())
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.preview.SetContent(m.content)
		// Charts are laid out for the panel width
		cmds = append(cmds, m.analyzeSelected())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if it, ok := m.selected(); ok {
				m.pending = it.id
				return m, m.analyzeSelected()
			}
			return m, nil

		case key.Matches(msg, keys.Copy):
			m.status = m.copyReport()
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.scheduleAnalysis())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.scheduleAnalysis())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to text input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if f := m.filterInput.Value(); f != m.filter {
			m.applyFilter(f)
			cmds = append(cmds, m.scheduleAnalysis())
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			visibleItems := m.panelHeight() / linesPerItem
			maxOffset := len(m.visible) - visibleItems
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.analyzeSelected())
			}
			return m, tea.Batch(cmds...)

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			return m, vpCmd
		}

		return m, nil

	case debounceTickMsg:
		// Only analyze if the selection hasn't moved since the tick was scheduled
		if it, ok := m.selected(); ok && it.id == msg.item {
			m.pending = msg.item
			cmds = append(cmds, m.analyzeSelected())
		}
		return m, tea.Batch(cmds...)

	case reportRenderedMsg:
		if it, ok := m.selected(); !ok || it.id != msg.item {
			return m, nil // stale report
		}
		moved := msg.item != m.shown
		m.content = msg.content
		m.shown = msg.item
		m.pending = -1
		m.preview.SetContent(msg.content)
		if moved {
			m.preview.GotoTop()
		}
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) selected() (scopeItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return scopeItem{}, false
	}
	return m.visible[m.cursor], true
}

// applyFilter keeps Overall plus participants whose name contains f,
// ignoring case, and moves the cursor back to the top.
func (m *model) applyFilter(f string) {
	m.filter = f
	needle := strings.ToLower(strings.TrimSpace(f))
	if needle == "" {
		m.visible = m.items
	} else {
		m.visible = nil
		for _, it := range m.items {
			if it.scope.IsOverall() || strings.Contains(strings.ToLower(it.scope.String()), needle) {
				m.visible = append(m.visible, it)
			}
		}
	}
	m.cursor = 0
	m.listOffset = 0
	if len(m.visible) > 1 {
		m.cursor = 1
	}
}

func (m model) copyReport() string {
	if m.content == "" {
		return "nothing to copy"
	}
	if err := clipboard.WriteAll(ansi.Strip(m.content)); err != nil {
		return "clipboard unavailable: " + err.Error()
	}
	return fmt.Sprintf("copied %s report", m.items[m.shown].scope)
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	// 30% for list, minus border padding
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 70
	}
	// 70% for the report, minus border padding
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY/linesPerItem
	}
	if x > listBoxRight+1 {
		return regionPreview, -1
	}
	return regionNone, -1
}

func (m model) statusBar() string {
	parts := []string{fmt.Sprintf("%d participants", len(m.items)-1)}
	if m.pending >= 0 {
		parts = append(parts, fmt.Sprintf("analyzing %s...", m.items[m.pending].scope))
	} else if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts,
		"up/dn select",
		"Enter refresh",
		"C-u/C-d scroll",
		"C-y copy",
		"Esc quit",
	)
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) analyzeSelected() tea.Cmd {
	it, ok := m.selected()
	if !ok {
		return nil
	}
	ropts := m.renderOpts
	ropts.Width = m.previewWidth() - 2
	return analyzeCmd(m.corpus, it, m.opts, ropts)
}

func (m model) scheduleAnalysis() tea.Cmd {
	it, ok := m.selected()
	if !ok {
		return nil
	}
	id := it.id
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{item: id}
	})
}
