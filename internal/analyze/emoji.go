package analyze

import (
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/forPelevin/gomoji"
)

// EmojiInventory decides which code points count as emoji.
type EmojiInventory interface {
	IsEmoji(r rune) bool
}

// RuneSet is an EmojiInventory listing code points explicitly.
type RuneSet map[rune]struct{}

func NewRuneSet(emoji ...string) RuneSet {
	s := make(RuneSet)
	for _, e := range emoji {
		for _, r := range e {
			s[r] = struct{}{}
		}
	}
	return s
}

func (s RuneSet) IsEmoji(r rune) bool {
	_, ok := s[r]
	return ok
}

// DefaultEmoji holds every emoji of the gomoji inventory that is a
// single code point once variation selectors are dropped, plus the
// regional indicator letters flags are spelled with.
var DefaultEmoji EmojiInventory = inventoryOf(gomoji.AllEmojis())

func inventoryOf(all []gomoji.Emoji) RuneSet {
	s := make(RuneSet)
	for _, e := range all {
		rs := []rune(strings.ReplaceAll(e.Character, "\ufe0f", ""))
		if len(rs) == 1 {
			s[rs[0]] = struct{}{}
		}
	}
	for r := rune(0x1f1e6); r <= 0x1f1ff; r++ {
		s[r] = struct{}{}
	}
	return s
}

// EmojiFrequency counts every emoji code point in scoped message bodies,
// most frequent first; equal counts keep first-seen order.
func EmojiFrequency(scope Scope, c *parse.Corpus, opts Options) []FrequencyEntry {
	opts = opts.withDefaults()

	cnt := newCounter()
	for _, m := range filter(scope, c) {
		for _, r := range m.Body {
			if opts.Emoji.IsEmoji(r) {
				cnt.add(string(r))
			}
		}
	}
	return cnt.ranked()
}
