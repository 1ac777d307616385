package dates

import (
	"time"
)

const dayKeyLayout = "2006-01-02"

// Set is a set of calendar dates keyed by "YYYY-MM-DD".
type Set map[string]struct{}

func NewSet(days ...time.Time) Set {
	s := make(Set, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

func (s Set) Add(day time.Time) {
	s[day.Format(dayKeyLayout)] = struct{}{}
}

func (s Set) Contains(day time.Time) bool {
	_, ok := s[day.Format(dayKeyLayout)]
	return ok
}

// Truncate drops the time-of-day component, keeping year/month/day in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateDaysBetween counts calendar days in the inclusive range [start, end]
// that are not in holidays. Time-of-day on either bound is ignored. Returns 0
// when end is before start.
func CalculateDaysBetween(start, end time.Time, holidays Set) int {
	start = Truncate(start)
	end = Truncate(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if holidays.Contains(d) {
			continue
		}
		days++
	}
	return days
}

// MonthBounds returns the first and last day of the month a "YYYY-MM" string
// denotes.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// MaxDate returns the later of two dates, MinDate the earlier. Both compare on
// the calendar day only.
func MaxDate(a, b time.Time) time.Time {
	if Truncate(a).After(Truncate(b)) {
		return a
	}
	return b
}

func MinDate(a, b time.Time) time.Time {
	if Truncate(a).Before(Truncate(b)) {
		return a
	}
	return b
}
