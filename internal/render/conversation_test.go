package render

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
)

func TestConversationWindow(t *testing.T) {
	t.Parallel()

	var raw strings.Builder
	for i := range 9 {
		raw.WriteString("15/01/2024, 09:0")
		raw.WriteString(string(rune('0' + i)))
		raw.WriteString(" - Alice: message ")
		raw.WriteString(string(rune('a' + i)))
		raw.WriteString("\n")
	}
	c, err := parse.Parse(raw.String())
	if err != nil {
		t.Fatalf("parse.Parse() error = %v", err)
	}

	out, err := Conversation(c, "chat.txt", ConversationOptions{Hit: 4, Context: 1})
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	if !strings.Contains(out, ">> Alice > 2024-01-15 09:04 (line 5) <<") {
		t.Fatalf("Conversation() has no highlighted hit:\n%s", out)
	}
	for _, want := range []string{"(3 messages before)", "message d", "message f", "(3 messages after)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Conversation() missing %q", want)
		}
	}
	if strings.Contains(out, "message c") || strings.Contains(out, "message g") {
		t.Error("Conversation() rendered messages outside the window")
	}
}

func TestConversationOutOfRange(t *testing.T) {
	t.Parallel()

	c, err := parse.Parse("15/01/2024, 09:00 - Alice: hi")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Conversation(c, "x", ConversationOptions{Hit: 3}); err == nil {
		t.Error("Conversation() error = nil, want error")
	}
}

func TestConversationWraps(t *testing.T) {
	t.Parallel()

	c, err := parse.Parse("15/01/2024, 09:00 - Alice: " + strings.Repeat("word ", 20))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Conversation(c, "chat.txt", ConversationOptions{Hit: -1, Width: 30})
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Errorf("Conversation() = %d lines, want the body wrapped over several", len(lines))
	}
	for _, l := range lines {
		if w := runewidth.StringWidth(ansi.Strip(l)); w > 30 {
			t.Errorf("line %q is %d columns wide, want <= 30", l, w)
		}
	}
}

func TestHighlightKeywords(t *testing.T) {
	t.Parallel()

	got := highlightKeywords("Good Morning, morning", "morning OR night")
	want := "Good " + colorBoldRed + "Morning" + colorReset + ", " + colorBoldRed + "morning" + colorReset
	if got != want {
		t.Errorf("highlightKeywords() = %q, want %q", got, want)
	}
}

func TestWrapLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"no wrap", "hello", 0, []string{"hello"}},
		{"split", "abcdef", 4, []string{"abcd", "ef"}},
		{"ansi is zero width", colorDim + "abcd" + colorReset, 4, []string{colorDim + "abcd" + colorReset}},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
		{"empty", "", 10, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, wrapLine(tt.line, tt.width)); diff != "" {
				t.Errorf("wrapLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
