package render

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	styleMetric = lipgloss.NewStyle().
			Bold(true)
)

// heatShades maps a cell's share of the busiest cell to a glyph.
var heatShades = []string{"·", "░", "▒", "▓", "█"}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

type Options struct {
	Width     int // total width; 0 = 80
	BusyUsers int // rows in the busy-user chart; 0 = 5
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.BusyUsers <= 0 {
		o.BusyUsers = 5
	}
	return o
}

// bar is one labelled value of a horizontal bar chart.
type bar struct {
	label string
	value int
	note  string
}

// Report renders every section of r as terminal text.
func Report(r analyze.Report, opts Options) string {
	opts = opts.withDefaults()

	var b strings.Builder
	section := func(title, body string) {
		b.WriteString(styleTitle.Render(title))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	section(fmt.Sprintf("Top Statistics: %s", r.Scope), Stats(r.Stats))

	if len(r.BusyUsers) > 0 {
		section("Most Busy Users", Users(analyze.Top(r.BusyUsers, opts.BusyUsers), opts.Width))
	}

	monthly := make([]bar, len(r.Monthly))
	for i, p := range r.Monthly {
		monthly[i] = bar{label: p.Label, value: p.Count}
	}
	section("Monthly Timeline", barChart(monthly, opts.Width))

	section("Daily Timeline", Sparkline(r.Daily, opts.Width))

	section("Most Busy Day", distribution(r.Weekdays, opts.Width))
	section("Most Busy Month", distribution(r.Months, opts.Width))
	section("Weekly Activity Heatmap", Heatmap(r.Heatmap))
	section("Most Common Words", Frequency(r.CommonWords, opts.Width))
	section("Emoji Analysis", Frequency(r.Emoji, opts.Width))

	b.WriteString(styleDim.Render(fmt.Sprintf("%d word-cloud tokens", r.WordcloudSize)))
	b.WriteString("\n")
	return b.String()
}

// Stats renders the four headline totals on one line.
func Stats(st analyze.Stats) string {
	parts := []string{
		"Total Messages " + styleMetric.Render(fmt.Sprint(st.Messages)),
		"Total Words " + styleMetric.Render(fmt.Sprint(st.Words)),
		"Media Shared " + styleMetric.Render(fmt.Sprint(st.Media)),
		"Links Shared " + styleMetric.Render(fmt.Sprint(st.Links)),
	}
	return "  " + strings.Join(parts, styleDim.Render("  |  ")) + "\n"
}

// Users renders a ranking as bars annotated with each share.
func Users(ranking []analyze.UserActivity, width int) string {
	bars := make([]bar, len(ranking))
	for i, u := range ranking {
		bars[i] = bar{label: u.Name, value: u.Messages, note: fmt.Sprintf("%.2f%%", u.Percent)}
	}
	return barChart(bars, width)
}

// Frequency renders a token table as bars.
func Frequency(entries []analyze.FrequencyEntry, width int) string {
	bars := make([]bar, len(entries))
	for i, e := range entries {
		bars[i] = bar{label: e.Token, value: e.Count}
	}
	return barChart(bars, width)
}

func distribution(entries []analyze.DistributionEntry, width int) string {
	bars := make([]bar, len(entries))
	for i, e := range entries {
		bars[i] = bar{label: e.Label, value: e.Count}
	}
	return barChart(bars, width)
}

func barChart(bars []bar, width int) string {
	if len(bars) == 0 {
		return styleDim.Render("  (no data)") + "\n"
	}

	labelW, maxV := 0, 0
	for _, b := range bars {
		if w := runewidth.StringWidth(b.label); w > labelW {
			labelW = w
		}
		if b.value > maxV {
			maxV = b.value
		}
	}
	if labelW > width/3 {
		labelW = width / 3
	}
	numW := len(fmt.Sprint(maxV))

	barW := width - labelW - numW - 16
	if barW < 5 {
		barW = 5
	}

	var sb strings.Builder
	for _, b := range bars {
		label := runewidth.Truncate(b.label, labelW, "…")
		label = runewidth.FillRight(label, labelW)
		n := 0
		if maxV > 0 {
			n = b.value * barW / maxV
		}
		if n == 0 && b.value > 0 {
			n = 1
		}
		line := fmt.Sprintf("  %s %s%s %*d",
			label,
			styleBar.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", barW-n),
			numW, b.value,
		)
		if b.note != "" {
			line += " " + styleDim.Render(b.note)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Sparkline renders a timeline as one tick per point, wrapped to width,
// followed by its date range and peak.
func Sparkline(points []analyze.TimePoint, width int) string {
	if len(points) == 0 {
		return styleDim.Render("  (no data)") + "\n"
	}

	peak := points[0]
	for _, p := range points {
		if p.Count > peak.Count {
			peak = p
		}
	}

	lineW := width - 4
	if lineW < 10 {
		lineW = 10
	}

	var sb strings.Builder
	var row []rune
	for _, p := range points {
		i := 0
		if peak.Count > 0 {
			i = p.Count * (len(sparkTicks) - 1) / peak.Count
		}
		row = append(row, sparkTicks[i])
		if len(row) == lineW {
			sb.WriteString("  " + styleBar.Render(string(row)) + "\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		sb.WriteString("  " + styleBar.Render(string(row)) + "\n")
	}
	sb.WriteString(styleDim.Render(fmt.Sprintf("  %s … %s, %d days, peak %d on %s",
		points[0].Label, points[len(points)-1].Label, len(points), peak.Count, peak.Label)))
	sb.WriteString("\n")
	return sb.String()
}

// Heatmap renders the weekday by hour matrix with one glyph per cell.
func Heatmap(h analyze.Heatmap) string {
	maxV := h.Max()

	var sb strings.Builder
	sb.WriteString("      ")
	for hour := 0; hour < len(h.Columns); hour++ {
		if hour%3 == 0 {
			sb.WriteString(fmt.Sprintf("%-3d", hour))
		}
	}
	sb.WriteString("\n")

	for day, name := range h.Rows {
		sb.WriteString(fmt.Sprintf("  %-3s ", runewidth.Truncate(name, 3, "")))
		for hour := range h.Columns {
			v := h.Cells[day][hour]
			i := 0
			if maxV > 0 && v > 0 {
				i = 1 + v*(len(heatShades)-2)/maxV
			}
			sb.WriteString(styleBar.Render(heatShades[i]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styleDim.Render(fmt.Sprintf("  busiest cell: %d messages", maxV)))
	sb.WriteString("\n")
	return sb.String()
}
