package analyze

import "github.com/Zuo-Peng/chat-analyzer/internal/parse"

// Report is everything one "show analysis" request produces for a scope.
type Report struct {
	Scope         string              `json:"scope"`
	Stats         Stats               `json:"stats"`
	BusyUsers     []UserActivity      `json:"busy_users,omitempty"`
	Monthly       []TimePoint         `json:"monthly_timeline"`
	Daily         []TimePoint         `json:"daily_timeline"`
	Weekdays      []DistributionEntry `json:"weekday_activity"`
	Months        []DistributionEntry `json:"month_activity"`
	Heatmap       Heatmap             `json:"heatmap"`
	CommonWords   []FrequencyEntry    `json:"common_words"`
	Emoji         []FrequencyEntry    `json:"emoji"`
	WordcloudSize int                 `json:"wordcloud_tokens"`
}

// Run computes a full report. Nothing is cached: each call walks the
// corpus again. The busy-user ranking is only part of the overall report.
func Run(scope Scope, c *parse.Corpus, opts Options) Report {
	opts = opts.withDefaults()

	r := Report{
		Scope:         scope.String(),
		Stats:         FetchStats(scope, c, opts),
		Monthly:       MonthlyTimeline(scope, c),
		Daily:         DailyTimeline(scope, c),
		Weekdays:      WeeklyActivityMap(scope, c),
		Months:        MonthlyActivityMap(scope, c),
		Heatmap:       ActivityHeatmap(scope, c),
		CommonWords:   MostCommonWords(scope, c, opts),
		Emoji:         EmojiFrequency(scope, c, opts),
		WordcloudSize: len(WordcloudTokens(scope, c, opts)),
	}
	if scope.IsOverall() {
		r.BusyUsers = MostBusyUsers(c)
	}
	return r
}
