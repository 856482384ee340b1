// Package analyze computes chat statistics over a parsed corpus. Every
// function reads the corpus without modifying it and recomputes its
// result from scratch.
package analyze

import (
	"slices"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// OverallLabel is how the all-participants scope is named to users.
const OverallLabel = "Overall"

// Scope selects the messages an aggregate runs over: all of them, or
// those written by one participant.
type Scope struct {
	name string
	one  bool
}

// Overall covers every message, system notifications included.
var Overall = Scope{}

// User scopes to one participant. System notifications never match.
func User(name string) Scope {
	return Scope{name: name, one: true}
}

// ParseScope maps "" and "Overall" (any case) to Overall and anything
// else to User.
func ParseScope(s string) Scope {
	if s == "" || strings.EqualFold(s, OverallLabel) {
		return Overall
	}
	return User(s)
}

// ResolveScope is ParseScope that first matches s against the corpus
// participants, so a participant literally named "Overall" stays
// selectable.
func ResolveScope(s string, c *parse.Corpus) Scope {
	if s != "" && slices.Contains(c.Participants(), s) {
		return User(s)
	}
	return ParseScope(s)
}

func (s Scope) IsOverall() bool { return !s.one }

func (s Scope) String() string {
	if !s.one {
		return OverallLabel
	}
	return s.name
}

func (s Scope) Matches(m parse.Message) bool {
	if !s.one {
		return true
	}
	return !m.Sender.IsSystem() && m.Sender.Name() == s.name
}

// filter returns the scoped messages in transcript order.
func filter(s Scope, c *parse.Corpus) []parse.Message {
	var out []parse.Message
	for _, m := range c.All() {
		if s.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}
