package attendance

import (
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
)

const (
	// Check-ins strictly after 09:15 are late, regardless of hours worked.
	lateCutoffHour   = 9
	lateCutoffMinute = 15

	halfDayMaxHours  = 4.5
	overTimeMinHours = 9.0
)

// DetermineStatus classifies a completed attendance day. Precedence is fixed:
// a missing check-in or check-out is absent; a late check-in wins over
// everything else; then short days are half-day, long days over-time, the
// rest on-time.
func DetermineStatus(inTime, outTime *time.Time) attendance.Status {
	if inTime == nil || outTime == nil {
		return attendance.StatusAbsent
	}

	if isLate(*inTime) {
		return attendance.StatusLate
	}

	hours := outTime.Sub(*inTime).Hours()
	switch {
	case hours < halfDayMaxHours:
		return attendance.StatusHalfDay
	case hours > overTimeMinHours:
		return attendance.StatusOverTime
	default:
		return attendance.StatusOnTime
	}
}

func isLate(inTime time.Time) bool {
	cutoff := time.Date(inTime.Year(), inTime.Month(), inTime.Day(),
		lateCutoffHour, lateCutoffMinute, 0, 0, inTime.Location())
	return inTime.After(cutoff)
}
