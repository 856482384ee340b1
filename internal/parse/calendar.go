package parse

import (
	"fmt"
	"time"
)

// Weekdays lists day names in Monday-first order.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Calendar holds the calendar fields derived from a message timestamp.
type Calendar struct {
	Date        time.Time // midnight of the message day
	Year        int
	MonthNumber int // 1-12
	MonthName   string
	Day         int
	DayIndex    int // 0 = Monday
	DayName     string
	Hour        int
	Minute      int
}

// NewCalendar derives calendar fields from t without consulting the
// process locale.
func NewCalendar(t time.Time) Calendar {
	y, m, d := t.Date()
	idx := (int(t.Weekday()) + 6) % 7
	return Calendar{
		Date:        time.Date(y, m, d, 0, 0, 0, 0, t.Location()),
		Year:        y,
		MonthNumber: int(m),
		MonthName:   Months[m-1],
		Day:         d,
		DayIndex:    idx,
		DayName:     Weekdays[idx],
		Hour:        t.Hour(),
		Minute:      t.Minute(),
	}
}

// Period returns the one-hour bucket label of the calendar's hour.
func (c Calendar) Period() string {
	return PeriodLabel(c.Hour)
}

// PeriodLabel names the hour bucket starting at hour, e.g. "13-14".
// The buckets around midnight are "23-00" and "00-1".
func PeriodLabel(hour int) string {
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return fmt.Sprintf("%d-%d", hour, hour+1)
	}
}
