package render

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorHit     = "\033[43m"   // yellow background
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

// senderColors cycle over participants in name order.
var senderColors = []string{
	"\033[1;34m", // bold blue
	"\033[1;32m", // bold green
	"\033[1;35m", // bold magenta
	"\033[1;36m", // bold cyan
	"\033[1;33m", // bold yellow
}

type ConversationOptions struct {
	Hit     int    // message position to highlight, -1 for none
	Context int    // messages before/after hit to show; 0 = 10, <0 = all
	Width   int    // wrap width (0 = no wrap)
	Query   string // search query for keyword highlighting
}

// fts5Operators are FTS5 operators that should not be highlighted as keywords.
var fts5Operators = map[string]bool{
	"AND": true, "OR": true, "NOT": true, "NEAR": true,
}

// highlightKeywords wraps case-insensitive matches of query terms in bold red ANSI codes.
func highlightKeywords(text, query string) string {
	var terms []string
	for _, t := range strings.Fields(query) {
		if !fts5Operators[t] {
			terms = append(terms, t)
		}
	}
	for _, term := range terms {
		lower := strings.ToLower(term)
		i := 0
		for i < len(text) {
			rest := strings.ToLower(text[i:])
			if len(rest) != len(text)-i {
				break // case folding changed byte offsets
			}
			idx := strings.Index(rest, lower)
			if idx < 0 {
				break
			}
			pos := i + idx
			replacement := colorBoldRed + text[pos:pos+len(term)] + colorReset
			text = text[:pos] + replacement + text[pos+len(term):]
			i = pos + len(replacement)
		}
	}
	return text
}

// indentLines prepends each line of text with the given prefix.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Conversation renders the messages around opts.Hit, wrapped to opts.Width.
func Conversation(c *parse.Corpus, name string, opts ConversationOptions) (string, error) {
	if opts.Context == 0 {
		opts.Context = 10
	}
	if opts.Hit >= c.Len() {
		return "", fmt.Errorf("message %d out of range (%d messages)", opts.Hit, c.Len())
	}

	start, end := 0, c.Len()
	if opts.Context > 0 && opts.Hit >= 0 {
		start = max(0, opts.Hit-opts.Context)
		end = min(c.Len(), opts.Hit+opts.Context+1)
	}

	participants := c.Participants()
	colorOf := func(s parse.Sender) string {
		if s.IsSystem() {
			return colorDim
		}
		i, _ := slices.BinarySearch(participants, s.Name())
		return senderColors[i%len(senderColors)]
	}

	var b strings.Builder
	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	writeLine(fmt.Sprintf("%s--- %s [%d messages, %s] ---%s", colorDim, name, c.Len(), c.DateOrder(), colorReset))

	if start > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages before) ...%s", colorDim, start, colorReset))
	}

	for i := start; i < end; i++ {
		m := c.At(i)
		ts := m.Timestamp.Format("2006-01-02 15:04")

		if i == opts.Hit {
			writeLine(fmt.Sprintf("%s>> %s > %s (line %d) <<%s", colorHit, m.Sender, ts, m.Line, colorReset))
		} else {
			writeLine(fmt.Sprintf("%s%s >%s %s%s%s", colorOf(m.Sender), m.Sender, colorReset, colorDim, ts, colorReset))
		}

		text := highlightKeywords(m.Body, opts.Query)
		for _, tl := range strings.Split(indentLines(text, "  "), "\n") {
			writeLine(tl)
		}
	}

	if after := c.Len() - end; after > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages after) ...%s", colorDim, after, colorReset))
	}

	return b.String(), nil
}
