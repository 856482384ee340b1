package analyze

import (
	"testing"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/forPelevin/gomoji"
	"github.com/google/go-cmp/cmp"
)

const scenario = "1/1/24, 10:00 AM - Alice: Hello\n" +
	"1/1/24, 10:05 AM - Bob: Hi Alice\n" +
	"1/1/24, 10:06 AM - Alice created group \"Test\""

const group = "15/01/2024, 09:00 - Alice: good morning 😀😀\n" +
	"15/01/2024, 09:30 - Bob: <Media omitted>\n" +
	"16/01/2024, 21:10 - Alice: check http://example.com now\n" +
	"16/01/2024, 21:11 - Alice: see https://a.io and https://b.io\n" +
	"03/02/2024, 13:45 - Bob: morning 😀 🎉\n" +
	"03/02/2024, 13:46 - Carol: hello\n" +
	"multi line\n" +
	"03/02/2024, 14:00 - Bob added Dave"

func mustParse(t *testing.T, raw string) *parse.Corpus {
	t.Helper()
	c, err := parse.Parse(raw)
	if err != nil {
		t.Fatalf("parse.Parse() error = %v", err)
	}
	return c
}

func TestFetchStats(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	tests := []struct {
		scope Scope
		want  Stats
	}{
		{Overall, Stats{Messages: 7, Words: 21, Media: 1, Links: 2}},
		{User("Alice"), Stats{Messages: 3, Words: 10, Media: 0, Links: 2}},
		{User("Bob"), Stats{Messages: 2, Words: 5, Media: 1, Links: 0}},
		{User("Zed"), Stats{}},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, FetchStats(tt.scope, c, Options{})); diff != "" {
				t.Errorf("FetchStats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFetchStatsScenario(t *testing.T) {
	t.Parallel()

	c := mustParse(t, scenario)
	// Hello (1) + Hi Alice (2) + the notification's four tokens.
	want := Stats{Messages: 3, Words: 7}
	if diff := cmp.Diff(want, FetchStats(Overall, c, Options{})); diff != "" {
		t.Errorf("FetchStats() mismatch (-want +got):\n%s", diff)
	}

	link := mustParse(t, "1/1/24, 10:00 - Ann: check http://example.com now")
	if got := FetchStats(Overall, link, Options{}).Links; got != 1 {
		t.Errorf("Links = %d, want 1", got)
	}
}

func TestScopedStatsNeverExceedOverall(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	all := FetchStats(Overall, c, Options{})
	for _, name := range c.Participants() {
		st := FetchStats(User(name), c, Options{})
		if st.Messages > all.Messages || st.Words > all.Words || st.Media > all.Media || st.Links > all.Links {
			t.Errorf("FetchStats(%s) = %+v exceeds overall %+v", name, st, all)
		}
	}
}

func TestMostBusyUsers(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	want := []UserActivity{
		{Name: "Alice", Messages: 3, Percent: 42.86},
		{Name: "Bob", Messages: 2, Percent: 28.57},
		{Name: "Carol", Messages: 1, Percent: 14.29},
	}
	if diff := cmp.Diff(want, MostBusyUsers(c)); diff != "" {
		t.Errorf("MostBusyUsers() mismatch (-want +got):\n%s", diff)
	}
	if got := Top(MostBusyUsers(c), 2); len(got) != 2 {
		t.Errorf("Top(2) returned %d rows", len(got))
	}
}

func TestMostBusyUsersTiesByName(t *testing.T) {
	t.Parallel()

	c := mustParse(t, scenario)
	want := []UserActivity{
		{Name: "Alice", Messages: 1, Percent: 33.33},
		{Name: "Bob", Messages: 1, Percent: 33.33},
	}
	if diff := cmp.Diff(want, MostBusyUsers(c)); diff != "" {
		t.Errorf("MostBusyUsers() mismatch (-want +got):\n%s", diff)
	}
}

func TestTimelines(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)

	var monthly []DistributionEntry
	for _, p := range MonthlyTimeline(Overall, c) {
		monthly = append(monthly, DistributionEntry{Label: p.Label, Count: p.Count})
	}
	wantMonthly := []DistributionEntry{{"January-2024", 4}, {"February-2024", 3}}
	if diff := cmp.Diff(wantMonthly, monthly); diff != "" {
		t.Errorf("MonthlyTimeline() mismatch (-want +got):\n%s", diff)
	}

	var daily []DistributionEntry
	for _, p := range DailyTimeline(User("Alice"), c) {
		daily = append(daily, DistributionEntry{Label: p.Label, Count: p.Count})
	}
	wantDaily := []DistributionEntry{{"2024-01-15", 1}, {"2024-01-16", 2}}
	if diff := cmp.Diff(wantDaily, daily); diff != "" {
		t.Errorf("DailyTimeline() mismatch (-want +got):\n%s", diff)
	}

	if got := MonthlyTimeline(User("Zed"), c); len(got) != 0 {
		t.Errorf("MonthlyTimeline(Zed) = %v, want empty", got)
	}
}

func TestTimelineOrderIsChronological(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "02/03/2024, 10:00 - A: later\n20/01/2023, 10:00 - A: earlier\n02/03/2024, 11:00 - A: again")
	got := MonthlyTimeline(Overall, c)
	if len(got) != 2 || got[0].Label != "January-2023" || got[1].Label != "March-2024" || got[1].Count != 2 {
		t.Errorf("MonthlyTimeline() = %+v", got)
	}
}

func TestActivityMaps(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)

	week := WeeklyActivityMap(Overall, c)
	wantWeek := []DistributionEntry{
		{"Monday", 2}, {"Tuesday", 2}, {"Wednesday", 0}, {"Thursday", 0},
		{"Friday", 0}, {"Saturday", 3}, {"Sunday", 0},
	}
	if diff := cmp.Diff(wantWeek, week); diff != "" {
		t.Errorf("WeeklyActivityMap() mismatch (-want +got):\n%s", diff)
	}

	months := MonthlyActivityMap(User("Zed"), c)
	if len(months) != 12 || months[0].Label != "January" || months[11].Label != "December" {
		t.Errorf("MonthlyActivityMap() = %+v", months)
	}
	for _, e := range months {
		if e.Count != 0 {
			t.Errorf("MonthlyActivityMap(Zed) %s = %d, want 0", e.Label, e.Count)
		}
	}
	if got := MonthlyActivityMap(Overall, c); got[0].Count != 4 || got[1].Count != 3 {
		t.Errorf("MonthlyActivityMap() = %+v", got)
	}
}

func TestActivityHeatmap(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	h := ActivityHeatmap(Overall, c)

	cells := 0
	for _, row := range h.Cells {
		cells += len(row)
	}
	if cells != 168 {
		t.Errorf("cells = %d, want 168", cells)
	}
	if h.Total() != FetchStats(Overall, c, Options{}).Messages {
		t.Errorf("Total() = %d, want %d", h.Total(), c.Len())
	}
	if h.Cells[0][9] != 2 || h.Cells[1][21] != 2 || h.Cells[5][13] != 2 || h.Cells[5][14] != 1 {
		t.Errorf("unexpected cells: %v", h.Cells)
	}
	if h.Rows[0] != "Monday" || h.Columns[13] != "13-14" || h.Columns[23] != "23-00" {
		t.Errorf("labels = %v / %v", h.Rows, h.Columns)
	}

	bob := ActivityHeatmap(User("Bob"), c)
	if bob.Total() != 2 {
		t.Errorf("Bob Total() = %d, want 2", bob.Total())
	}
}

func TestMostCommonWords(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	got := MostCommonWords(Overall, c, Options{WordLimit: 3})
	want := []FrequencyEntry{{"morning", 2}, {"good", 1}, {"😀😀", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MostCommonWords() mismatch (-want +got):\n%s", diff)
	}

	for _, e := range MostCommonWords(Overall, c, Options{}) {
		switch e.Token {
		case "<media", "omitted>", "now", "and", "added":
			t.Errorf("unexpected token %q", e.Token)
		}
	}
}

func TestMediaOnlyCountsAsMedia(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "1/1/24, 10:00 - Ann: <Media omitted>")
	if got := FetchStats(Overall, c, Options{}).Media; got != 1 {
		t.Errorf("Media = %d, want 1", got)
	}
	if got := MostCommonWords(Overall, c, Options{}); len(got) != 0 {
		t.Errorf("MostCommonWords() = %v, want none", got)
	}
}

func TestCustomOptions(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "1/1/24, 10:00 - Ann: image omitted\n1/1/24, 10:01 - Ann: hello world :)")
	opts := Options{
		MediaPlaceholder: "image omitted",
		Stopwords:        Stopwords{"world": {}},
		Emoji:            NewRuneSet(":"),
	}
	if got := FetchStats(Overall, c, opts).Media; got != 1 {
		t.Errorf("Media = %d, want 1", got)
	}
	if diff := cmp.Diff([]string{"hello", ":)"}, WordcloudTokens(Overall, c, opts)); diff != "" {
		t.Errorf("WordcloudTokens() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]FrequencyEntry{{":", 1}}, EmojiFrequency(Overall, c, opts)); diff != "" {
		t.Errorf("EmojiFrequency() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmojiFrequency(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	want := []FrequencyEntry{{"😀", 3}, {"🎉", 1}}
	if diff := cmp.Diff(want, EmojiFrequency(Overall, c, Options{})); diff != "" {
		t.Errorf("EmojiFrequency() mismatch (-want +got):\n%s", diff)
	}
	if got := EmojiFrequency(User("Carol"), c, Options{}); len(got) != 0 {
		t.Errorf("EmojiFrequency(Carol) = %v, want none", got)
	}
}

func TestDefaultEmoji(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'😀', '🎉', '❤', '✅', '🇮', '🤣'} {
		if !DefaultEmoji.IsEmoji(r) {
			t.Errorf("IsEmoji(%q) = false", r)
		}
	}
	// Dingbats, box and music symbols without the Emoji property.
	for _, r := range []rune{'a', '1', ' ', '\u200d', '\ufe0f', 'é', '✓', '➔', '☐', '♩', '❨'} {
		if DefaultEmoji.IsEmoji(r) {
			t.Errorf("IsEmoji(%q) = true", r)
		}
	}
}

func TestInventoryOf(t *testing.T) {
	t.Parallel()

	inv := inventoryOf([]gomoji.Emoji{
		{Character: "❤\ufe0f"},
		{Character: "👨\u200d👩\u200d👧"},
		{Character: "1\ufe0f\u20e3"},
	})
	if !inv.IsEmoji('❤') || !inv.IsEmoji('🇳') {
		t.Error("single code point emoji and regional indicators should be included")
	}
	for _, r := range []rune{'👨', '1', '\u20e3', '\ufe0f'} {
		if inv.IsEmoji(r) {
			t.Errorf("IsEmoji(%q) = true, want only single code point entries", r)
		}
	}
}

func TestWordcloudTokensKeepsDuplicates(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)
	tokens := WordcloudTokens(User("Bob"), c, Options{})
	if diff := cmp.Diff([]string{"morning", "😀", "🎉"}, tokens); diff != "" {
		t.Errorf("WordcloudTokens() mismatch (-want +got):\n%s", diff)
	}

	weights := WordWeights(Overall, c, Options{})
	if weights[0] != (FrequencyEntry{"morning", 2}) {
		t.Errorf("WordWeights()[0] = %v", weights[0])
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	c := mustParse(t, group)

	all := Run(Overall, c, Options{})
	if all.Scope != OverallLabel || len(all.BusyUsers) != 3 || all.Stats.Messages != 7 {
		t.Errorf("Run(Overall) = %+v", all)
	}

	bob := Run(ParseScope("Bob"), c, Options{})
	if bob.BusyUsers != nil {
		t.Errorf("Run(Bob).BusyUsers = %v, want nil", bob.BusyUsers)
	}
	if bob.Heatmap.Total() != 2 || len(bob.Weekdays) != 7 || len(bob.Months) != 12 {
		t.Errorf("Run(Bob) = %+v", bob)
	}
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	if !ParseScope("").IsOverall() || !ParseScope("overall").IsOverall() {
		t.Error("ParseScope should map empty and overall to Overall")
	}
	if ParseScope("Alice").IsOverall() {
		t.Error("ParseScope(Alice) is overall")
	}
}

func TestResolveScopePrefersParticipants(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "1/1/24, 10:00 - Overall: hi\n1/1/24, 10:01 - Bob: hey")

	sc := ResolveScope("Overall", c)
	if sc.IsOverall() {
		t.Fatal("ResolveScope(Overall) = Overall scope while a participant has that name")
	}
	if got := FetchStats(sc, c, Options{}).Messages; got != 1 {
		t.Errorf("messages for participant Overall = %d, want 1", got)
	}
	if !ResolveScope("overall", c).IsOverall() || !ResolveScope("", c).IsOverall() {
		t.Error("non-matching names should fall back to ParseScope")
	}
	if ResolveScope("Bob", c) != User("Bob") {
		t.Error("ResolveScope(Bob) != User(Bob)")
	}
}
