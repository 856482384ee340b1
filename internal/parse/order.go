package parse

import (
	"errors"
	"fmt"
	"strings"
)

// DateOrder says which of the two leading date fields is the day.
type DateOrder int

const (
	AutoOrder  DateOrder = iota
	DayFirst             // 31/12/24
	MonthFirst           // 12/31/24
)

func (o DateOrder) String() string {
	switch o {
	case DayFirst:
		return "dmy"
	case MonthFirst:
		return "mdy"
	default:
		return "auto"
	}
}

// ParseDateOrder reads "auto", "dmy" or "mdy".
func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AutoOrder, nil
	case "dmy":
		return DayFirst, nil
	case "mdy":
		return MonthFirst, nil
	default:
		return AutoOrder, fmt.Errorf("unknown date order %q (want auto, dmy or mdy)", s)
	}
}

// detectOrder picks the date order from every entry-shaped line. A field
// above 12 can only be a day; when no line settles it, exports with am/pm
// markers are taken as month-first and 24-hour exports as day-first.
func detectOrder(lines []string) DateOrder {
	var dayFirst, monthFirst, meridiem int
	for _, line := range lines {
		h, ok := matchHeader(line)
		if !ok {
			continue
		}
		if h.meridiem != 0 {
			meridiem++
		}
		switch {
		case h.d1 > 12 && h.d2 <= 12:
			dayFirst++
		case h.d2 > 12 && h.d1 <= 12:
			monthFirst++
		}
	}
	switch {
	case dayFirst > monthFirst:
		return DayFirst
	case monthFirst > dayFirst:
		return MonthFirst
	case meridiem > 0:
		return MonthFirst
	default:
		return DayFirst
	}
}

// ErrNoEntries is matched by every *FormatError.
var ErrNoEntries = errors.New("no chat entries found")

// FormatError reports input in which no line matched the entry grammar.
type FormatError struct {
	Lines     int // lines read
	Malformed int // entry-shaped lines with an unreadable timestamp
}

func (e *FormatError) Error() string {
	if e.Malformed > 0 {
		return fmt.Sprintf("%v: %d lines read, %d with unreadable timestamps", ErrNoEntries, e.Lines, e.Malformed)
	}
	return fmt.Sprintf("%v: %d lines read", ErrNoEntries, e.Lines)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrNoEntries
}
