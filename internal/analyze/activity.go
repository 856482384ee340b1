package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// TimePoint is one period of a timeline.
type TimePoint struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// DistributionEntry counts messages in one calendar category.
type DistributionEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyTimeline counts messages per calendar month, oldest first, with
// labels like "March-2024". Months without messages are not emitted.
func MonthlyTimeline(scope Scope, c *parse.Corpus) []TimePoint {
	return timeline(filter(scope, c), func(cal parse.Calendar) (time.Time, string) {
		start := time.Date(cal.Year, time.Month(cal.MonthNumber), 1, 0, 0, 0, 0, cal.Date.Location())
		return start, fmt.Sprintf("%s-%d", cal.MonthName, cal.Year)
	})
}

// DailyTimeline counts messages per calendar date, oldest first.
func DailyTimeline(scope Scope, c *parse.Corpus) []TimePoint {
	return timeline(filter(scope, c), func(cal parse.Calendar) (time.Time, string) {
		return cal.Date, cal.Date.Format("2006-01-02")
	})
}

func timeline(msgs []parse.Message, period func(parse.Calendar) (time.Time, string)) []TimePoint {
	index := make(map[time.Time]int)
	var points []TimePoint
	for _, m := range msgs {
		start, label := period(m.Calendar)
		i, ok := index[start]
		if !ok {
			i = len(points)
			index[start] = i
			points = append(points, TimePoint{Label: label, Start: start})
		}
		points[i].Count++
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})
	return points
}

// WeeklyActivityMap returns seven entries, Monday to Sunday, zeros included.
func WeeklyActivityMap(scope Scope, c *parse.Corpus) []DistributionEntry {
	var counts [7]int
	for _, m := range filter(scope, c) {
		counts[m.Calendar.DayIndex]++
	}
	out := make([]DistributionEntry, len(parse.Weekdays))
	for i, name := range parse.Weekdays {
		out[i] = DistributionEntry{Label: name, Count: counts[i]}
	}
	return out
}

// MonthlyActivityMap returns twelve entries, January to December, zeros
// included.
func MonthlyActivityMap(scope Scope, c *parse.Corpus) []DistributionEntry {
	var counts [12]int
	for _, m := range filter(scope, c) {
		counts[m.Calendar.MonthNumber-1]++
	}
	out := make([]DistributionEntry, len(parse.Months))
	for i, name := range parse.Months {
		out[i] = DistributionEntry{Label: name, Count: counts[i]}
	}
	return out
}

// Heatmap is a weekday by hour message count matrix. Rows run Monday to
// Sunday, columns are the 24 one-hour buckets.
type Heatmap struct {
	Rows    [7]string  `json:"rows"`
	Columns [24]string `json:"columns"`
	Cells   [7][24]int `json:"cells"`
}

// Total sums every cell.
func (h Heatmap) Total() int {
	n := 0
	for _, row := range h.Cells {
		for _, v := range row {
			n += v
		}
	}
	return n
}

// Max returns the largest cell value.
func (h Heatmap) Max() int {
	hi := 0
	for _, row := range h.Cells {
		for _, v := range row {
			if v > hi {
				hi = v
			}
		}
	}
	return hi
}

// ActivityHeatmap buckets scoped messages by weekday and hour.
func ActivityHeatmap(scope Scope, c *parse.Corpus) Heatmap {
	h := Heatmap{Rows: parse.Weekdays}
	for hour := range h.Columns {
		h.Columns[hour] = parse.PeriodLabel(hour)
	}
	for _, m := range filter(scope, c) {
		h.Cells[m.Calendar.DayIndex][m.Calendar.Hour]++
	}
	return h
}
