package render

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/mattn/go-runewidth"
)

const transcript = "15/01/2024, 09:00 - Alice: good morning 😀\n" +
	"15/01/2024, 09:05 - Bob: morning! http://example.com\n" +
	"16/01/2024, 21:00 - Alice: <Media omitted>\n" +
	"16/01/2024, 21:30 - Bob joined using this group's invite link"

func report(t *testing.T, scope analyze.Scope) analyze.Report {
	t.Helper()
	c, err := parse.Parse(transcript)
	if err != nil {
		t.Fatalf("parse.Parse() error = %v", err)
	}
	return analyze.Run(scope, c, analyze.Options{})
}

func TestReportSections(t *testing.T) {
	t.Parallel()

	out := Report(report(t, analyze.Overall), Options{})
	for _, want := range []string{
		"Top Statistics: Overall",
		"Total Messages",
		"Most Busy Users",
		"Alice",
		"50.00%",
		"January-2024",
		"Weekly Activity Heatmap",
		"Most Common Words",
		"morning",
		"Emoji Analysis",
		"😀",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report() missing %q", want)
		}
	}
}

func TestReportUserScopeHasNoRanking(t *testing.T) {
	t.Parallel()

	out := Report(report(t, analyze.User("Bob")), Options{})
	if strings.Contains(out, "Most Busy Users") {
		t.Error("user report should not rank users")
	}
	if !strings.Contains(out, "Top Statistics: Bob") {
		t.Error("missing scope title")
	}
}

func TestBarChartWidth(t *testing.T) {
	t.Parallel()

	bars := []bar{
		{label: "a", value: 10},
		{label: "longer label", value: 5},
		{label: "zero", value: 0},
	}
	out := barChart(bars, 60)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("barChart() = %d lines, want 3", len(lines))
	}
	w := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if got := runewidth.StringWidth(l); got != w {
			t.Errorf("line %d width = %d, want %d", i, got, w)
		}
	}
	if strings.Contains(lines[2], "█") {
		t.Error("zero value should draw no bar")
	}
	if !strings.Contains(lines[1], "█") {
		t.Error("non-zero value should draw a bar")
	}
}

func TestBarChartCountColumn(t *testing.T) {
	t.Parallel()

	out := barChart([]bar{{label: "a", value: 1234}, {label: "b", value: 7}}, 60)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasSuffix(lines[0], " 1234") || !strings.HasSuffix(lines[1], "    7") {
		t.Errorf("counts not right-aligned to the widest value:\n%s", out)
	}

	out = barChart([]bar{{label: "a", value: 0}}, 60)
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), " 0") {
		t.Errorf("barChart() zero row = %q", out)
	}
}

func TestBarChartEmpty(t *testing.T) {
	t.Parallel()

	if out := barChart(nil, 80); !strings.Contains(out, "(no data)") {
		t.Errorf("barChart(nil) = %q", out)
	}
}

func TestHeatmap(t *testing.T) {
	t.Parallel()

	out := Heatmap(report(t, analyze.Overall).Heatmap)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// hour header, seven weekdays, summary
	if len(lines) != 9 {
		t.Fatalf("Heatmap() = %d lines, want 9", len(lines))
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Mon") {
		t.Errorf("first row = %q, want Monday", lines[1])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("Monday 09:00 should be the busiest cell: %q", lines[1])
	}
	if !strings.Contains(lines[8], "busiest cell: 2") {
		t.Errorf("summary = %q", lines[8])
	}
}

func TestSparkline(t *testing.T) {
	t.Parallel()

	out := Sparkline(report(t, analyze.Overall).Daily, 80)
	if !strings.Contains(out, "2024-01-15 … 2024-01-16, 2 days") {
		t.Errorf("Sparkline() = %q", out)
	}
	if !strings.Contains(out, "▁█") && !strings.Contains(out, "██") {
		t.Errorf("Sparkline() ticks = %q", out)
	}
}
