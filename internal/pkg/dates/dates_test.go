package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDaysBetween_SameDay(t *testing.T) {
	d := day(2026, time.January, 15)
	assert.Equal(t, 1, CalculateDaysBetween(d, d, nil))
}

func TestCalculateDaysBetween_EndBeforeStart(t *testing.T) {
	start := day(2026, time.January, 20)
	end := day(2026, time.January, 15)
	assert.Equal(t, 0, CalculateDaysBetween(start, end, nil))
}

func TestCalculateDaysBetween_FullMonth(t *testing.T) {
	start := day(2026, time.April, 1)
	end := day(2026, time.April, 30)
	assert.Equal(t, 30, CalculateDaysBetween(start, end, nil))
}

func TestCalculateDaysBetween_ExcludesHolidays(t *testing.T) {
	start := day(2026, time.January, 1)
	end := day(2026, time.January, 10)
	holidays := NewSet(day(2026, time.January, 1), day(2026, time.January, 5))

	assert.Equal(t, 8, CalculateDaysBetween(start, end, holidays))
}

func TestCalculateDaysBetween_HolidayOutsideRangeIgnored(t *testing.T) {
	start := day(2026, time.January, 2)
	end := day(2026, time.January, 4)
	holidays := NewSet(day(2026, time.January, 10))

	assert.Equal(t, 3, CalculateDaysBetween(start, end, holidays))
}

func TestCalculateDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, CalculateDaysBetween(start, end, nil))
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2026-02")
	assert.NoError(t, err)
	assert.Equal(t, day(2026, time.February, 1), start)
	assert.Equal(t, day(2026, time.February, 28), end)

	_, _, err = MonthBounds("2026-2")
	assert.Error(t, err)
}

func TestMonthBounds_LeapYear(t *testing.T) {
	_, end, err := MonthBounds("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 29), end)
}

func TestMinMaxDate(t *testing.T) {
	a := day(2026, time.May, 3)
	b := day(2026, time.May, 10)
	assert.Equal(t, a, MinDate(a, b))
	assert.Equal(t, b, MaxDate(a, b))
	assert.Equal(t, a, MinDate(b, a))
}
