package analyze

import (
	"sort"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// FrequencyEntry is a token and how often it occurred.
type FrequencyEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// counter tallies tokens and remembers the order they were first seen.
type counter struct {
	index   map[string]int
	entries []FrequencyEntry
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(token string) {
	i, ok := c.index[token]
	if !ok {
		i = len(c.entries)
		c.index[token] = i
		c.entries = append(c.entries, FrequencyEntry{Token: token})
	}
	c.entries[i].Count++
}

// ranked orders by count, descending; equal counts keep first-seen order.
func (c *counter) ranked() []FrequencyEntry {
	out := append([]FrequencyEntry(nil), c.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// WordcloudTokens returns the lowercased, stopword-free tokens of human,
// non-media messages in scope, in transcript order.
func WordcloudTokens(scope Scope, c *parse.Corpus, opts Options) []string {
	opts = opts.withDefaults()

	var tokens []string
	for _, m := range filter(scope, c) {
		if m.Sender.IsSystem() || opts.isMedia(m.Body) {
			continue
		}
		for _, w := range strings.Fields(strings.ToLower(m.Body)) {
			if opts.Stopwords.Contains(w) {
				continue
			}
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// MostCommonWords returns the opts.WordLimit most frequent words of
// WordcloudTokens.
func MostCommonWords(scope Scope, c *parse.Corpus, opts Options) []FrequencyEntry {
	opts = opts.withDefaults()

	cnt := newCounter()
	for _, w := range WordcloudTokens(scope, c, opts) {
		cnt.add(w)
	}
	out := cnt.ranked()
	if len(out) > opts.WordLimit {
		out = out[:opts.WordLimit]
	}
	return out
}

// WordWeights counts WordcloudTokens without truncation. It is the weight
// table a word cloud is laid out from.
func WordWeights(scope Scope, c *parse.Corpus, opts Options) []FrequencyEntry {
	cnt := newCounter()
	for _, w := range WordcloudTokens(scope, c, opts) {
		cnt.add(w)
	}
	return cnt.ranked()
}
