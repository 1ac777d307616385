package attendance

import "time"

// Status enum. The values feed the payroll engine: every status except
// "absent" counts the day as present.
type Status string

const (
	StatusOnTime   Status = "on-time"
	StatusLate     Status = "late"
	StatusOverTime Status = "over-time"
	StatusHalfDay  Status = "half-day"
	StatusAbsent   Status = "absent"
)

// CountsAsPresent reports whether the status contributes a present day to the
// payable-days count. A half-day still counts as one full present day; the
// original back office never pro-rated half-days and payroll depends on that.
func (s Status) CountsAsPresent() bool {
	switch s {
	case StatusOnTime, StatusLate, StatusOverTime, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one row per employee per calendar date. Created by check-in,
// completed by check-out.
type Attendance struct {
	ID        string
	EmployeeID string
	Date      time.Time
	InTime    *time.Time
	OutTime   *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
