package parse

import (
	"iter"
	"sort"
	"time"
)

// Sender identifies who wrote a message. The zero value is not valid;
// use Participant or SystemNotification.
type Sender struct {
	name   string
	system bool
}

// SystemNotification is the sender of group/system events that carry no
// human author ("Alice created group", "Messages are end-to-end encrypted").
var SystemNotification = Sender{system: true}

// Participant returns the sender for a named chat member.
func Participant(name string) Sender {
	return Sender{name: name}
}

// IsSystem reports whether s is the system notification sender.
func (s Sender) IsSystem() bool { return s.system }

// Name returns the participant name, or "" for system notifications.
func (s Sender) Name() string { return s.name }

func (s Sender) String() string {
	if s.system {
		return "group_notification"
	}
	return s.name
}

type Message struct {
	Timestamp time.Time
	Sender    Sender
	Body      string   // continuation lines joined with "\n"
	Calendar  Calendar // derived from Timestamp once at parse time
	Line      int      // 1-based line number of the entry line
	Header    string   // raw entry-line prefix preceding Body
}

// Raw reconstructs the original transcript segment of the message.
func (m Message) Raw() string {
	return m.Header + m.Body
}

// Stats counts how the input lines were classified.
type Stats struct {
	Lines         int
	Entries       int
	Continuations int
	Malformed     int // entry-shaped lines whose timestamp did not parse
	Preamble      int
}

// Corpus is the ordered, read-only result of parsing one transcript.
type Corpus struct {
	messages []Message
	preamble []string
	stats    Stats
	order    DateOrder
}

func (c *Corpus) Len() int { return len(c.messages) }

// At returns the i-th message in transcript order.
func (c *Corpus) At(i int) Message { return c.messages[i] }

// All iterates messages in transcript order.
func (c *Corpus) All() iter.Seq2[int, Message] {
	return func(yield func(int, Message) bool) {
		for i, m := range c.messages {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Preamble returns the lines that appeared before the first entry line.
func (c *Corpus) Preamble() []string {
	return append([]string(nil), c.preamble...)
}

func (c *Corpus) Stats() Stats { return c.stats }

// DateOrder returns the date field order that was used to read timestamps.
func (c *Corpus) DateOrder() DateOrder { return c.order }

// Participants returns the distinct human senders sorted by name.
func (c *Corpus) Participants() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range c.messages {
		if m.Sender.IsSystem() {
			continue
		}
		if _, ok := seen[m.Sender.name]; ok {
			continue
		}
		seen[m.Sender.name] = struct{}{}
		names = append(names, m.Sender.name)
	}
	sort.Strings(names)
	return names
}

// Span returns the earliest and latest timestamps in the corpus.
func (c *Corpus) Span() (first, last time.Time) {
	for i, m := range c.messages {
		if i == 0 || m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if i == 0 || m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}
	return first, last
}
