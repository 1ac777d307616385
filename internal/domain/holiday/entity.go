package holiday

import "time"

// Holiday is one non-working calendar date, excluded from working-day counts.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
