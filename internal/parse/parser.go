package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// entryRe matches the leading "date, time[ am/pm] - " of an entry line.
// Groups: 1 first date field, 2 second date field, 3 year, 4 hour,
// 5 minute, 6 second, 7 meridiem letter, 8 remainder.
var entryRe = regexp.MustCompile(
	`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4}),? (\d{1,2}):(\d{2})(?::(\d{2}))?(?:[ \x{202F}\x{00A0}]?([aApP])\.?[mM]\.?)? - (.*)$`,
)

type header struct {
	d1, d2, year      int
	hour, minute, sec int
	meridiem          byte // 0, 'a' or 'p'
	rest              string
	prefix            string
}

func matchHeader(line string) (header, bool) {
	m := entryRe.FindStringSubmatchIndex(line)
	if m == nil {
		return header{}, false
	}
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return line[m[2*i]:m[2*i+1]]
	}
	atoi := func(i int) int {
		n, _ := strconv.Atoi(group(i))
		return n
	}
	h := header{
		d1:     atoi(1),
		d2:     atoi(2),
		year:   atoi(3),
		hour:   atoi(4),
		minute: atoi(5),
		sec:    atoi(6),
		rest:   group(8),
		prefix: line[:m[16]],
	}
	if mer := group(7); mer != "" {
		h.meridiem = strings.ToLower(mer)[0]
	}
	if len(group(3)) == 2 {
		h.year += 2000
	}
	return h, true
}

// timestamp resolves the header fields into a time. ok is false when the
// fields do not name a real date and clock time.
func (h header) timestamp(order DateOrder, loc *time.Location) (time.Time, bool) {
	day, month := h.d1, h.d2
	if order == MonthFirst {
		day, month = h.d2, h.d1
	}

	hour := h.hour
	switch h.meridiem {
	case 0:
		if hour > 23 {
			return time.Time{}, false
		}
	default:
		if hour < 1 || hour > 12 {
			return time.Time{}, false
		}
		hour %= 12
		if h.meridiem == 'p' {
			hour += 12
		}
	}
	if h.minute > 59 || h.sec > 59 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(h.year, time.Month(month), day, hour, h.minute, h.sec, 0, loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

type config struct {
	order DateOrder
	loc   *time.Location
}

type Option func(*config)

// WithDateOrder fixes the date field order instead of detecting it.
func WithDateOrder(o DateOrder) Option {
	return func(c *config) { c.order = o }
}

// WithLocation sets the zone timestamps are interpreted in. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *config) { c.loc = loc }
}

// accumulator folds transcript lines into messages. The record being
// built is kept open until the next entry line or the end of input.
type accumulator struct {
	cfg      config
	messages []Message
	preamble []string
	stats    Stats

	open     bool
	current  Message
	bodyRows []string
}

func (a *accumulator) feed(lineNo int, line string) {
	a.stats.Lines++
	if h, ok := matchHeader(line); ok {
		if ts, ok := h.timestamp(a.cfg.order, a.cfg.loc); ok {
			a.start(lineNo, h, ts)
			return
		}
		a.stats.Malformed++
	}
	a.continuation(line)
}

func (a *accumulator) start(lineNo int, h header, ts time.Time) {
	a.flush()
	a.stats.Entries++

	sender := SystemNotification
	body := h.rest
	if name, text, ok := strings.Cut(h.rest, ": "); ok && name != "" {
		sender = Participant(name)
		body = text
	}

	a.open = true
	a.current = Message{
		Timestamp: ts,
		Sender:    sender,
		Calendar:  NewCalendar(ts),
		Line:      lineNo,
		Header:    h.prefix + h.rest[:len(h.rest)-len(body)],
	}
	a.bodyRows = append(a.bodyRows[:0], body)
}

func (a *accumulator) continuation(line string) {
	if !a.open {
		a.stats.Preamble++
		a.preamble = append(a.preamble, line)
		return
	}
	a.stats.Continuations++
	a.bodyRows = append(a.bodyRows, line)
}

func (a *accumulator) flush() {
	if !a.open {
		return
	}
	a.current.Body = strings.Join(a.bodyRows, "\n")
	a.messages = append(a.messages, a.current)
	a.open = false
}

// Parse turns a raw transcript into a corpus. It returns a *FormatError
// when no line matches the entry grammar, including for empty input.
func Parse(raw string, opts ...Option) (*Corpus, error) {
	return ParseReader(strings.NewReader(raw), opts...)
}

// ParseReader is Parse over a reader. The input is buffered in memory
// because the date order is detected from the whole transcript.
func ParseReader(r io.Reader, opts ...Option) (*Corpus, error) {
	cfg := config{order: AutoOrder, loc: time.UTC}
	for _, o := range opts {
		o(&cfg)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	if cfg.order == AutoOrder {
		cfg.order = detectOrder(lines)
	}

	acc := &accumulator{cfg: cfg}
	for i, line := range lines {
		acc.feed(i+1, line)
	}
	acc.flush()

	if len(acc.messages) == 0 {
		return nil, &FormatError{Lines: len(lines), Malformed: acc.stats.Malformed}
	}

	return &Corpus{
		messages: acc.messages,
		preamble: acc.preamble,
		stats:    acc.stats,
		order:    cfg.order,
	}, nil
}

// ParseFile reads and parses the transcript at path.
func ParseFile(path string, opts ...Option) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ParseReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
