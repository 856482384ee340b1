package analyze

import (
	"math"
	"sort"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"mvdan.cc/xurls/v2"
)

var linkRe = xurls.Relaxed()

type Stats struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// FetchStats counts messages, whitespace-separated words, media
// placeholders and link-bearing messages in scope. A message with several
// links counts once.
func FetchStats(scope Scope, c *parse.Corpus, opts Options) Stats {
	opts = opts.withDefaults()

	var st Stats
	for _, m := range filter(scope, c) {
		st.Messages++
		st.Words += len(strings.Fields(m.Body))
		if opts.isMedia(m.Body) {
			st.Media++
		}
		if linkRe.MatchString(m.Body) {
			st.Links++
		}
	}
	return st
}

// UserActivity is one row of the busiest-participant ranking.
type UserActivity struct {
	Name     string  `json:"name"`
	Messages int     `json:"messages"`
	Percent  float64 `json:"percent"`
}

// MostBusyUsers ranks participants by message count, descending, with
// ties in name order. Percent is the share of every message in the corpus,
// notifications included, rounded to two decimals.
func MostBusyUsers(c *parse.Corpus) []UserActivity {
	total := c.Len()
	if total == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, m := range c.All() {
		if m.Sender.IsSystem() {
			continue
		}
		counts[m.Sender.Name()]++
	}

	ranking := make([]UserActivity, 0, len(counts))
	for name, n := range counts {
		ranking = append(ranking, UserActivity{
			Name:     name,
			Messages: n,
			Percent:  round2(float64(n) / float64(total) * 100),
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Messages == ranking[j].Messages {
			return ranking[i].Name < ranking[j].Name
		}
		return ranking[i].Messages > ranking[j].Messages
	})
	return ranking
}

// Top returns at most n leading rows of a ranking.
func Top(ranking []UserActivity, n int) []UserActivity {
	if n >= 0 && len(ranking) > n {
		return ranking[:n]
	}
	return ranking
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
