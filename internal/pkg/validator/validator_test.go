package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2024-06")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), month)

	invalid := []string{
		"",
		"garbage",
		"2024-6",
		"06-2024",
		"2024/06",
		"2024-13",
		"2024-00",
		"2024-06-15",
	}
	for _, input := range invalid {
		_, ok := IsValidMonth(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-06-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), date)

	for _, input := range []string{"", "15-06-2024", "2024-06", "2024-06-32"} {
		_, ok := IsValidDate(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestIsValidClockTime(t *testing.T) {
	_, ok := IsValidClockTime("09:15")
	assert.True(t, ok)
	_, ok = IsValidClockTime("09:15:30")
	assert.True(t, ok)

	for _, input := range []string{"", "9am", "25:00", "09:61"} {
		_, ok := IsValidClockTime(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.False(t, IsValidEmail("jane.doe@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be YYYY-MM"},
		{Field: "employee_ids", Message: "at least one employee is required"},
	}

	assert.Equal(t, "month: must be YYYY-MM; employee_ids: at least one employee is required", errs.Error())
	assert.Equal(t, map[string]string{
		"month":        "must be YYYY-MM",
		"employee_ids": "at least one employee is required",
	}, errs.ToMap())
}
