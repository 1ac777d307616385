package attendance

import (
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) *time.Time {
	t := time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
	return &t
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name    string
		inTime  *time.Time
		outTime *time.Time
		want    attendance.Status
	}{
		{
			name:    "missing check-in is absent",
			inTime:  nil,
			outTime: at(18, 0),
			want:    attendance.StatusAbsent,
		},
		{
			name:    "missing check-out is absent",
			inTime:  at(9, 0),
			outTime: nil,
			want:    attendance.StatusAbsent,
		},
		{
			name:    "late check-in wins over normal hours",
			inTime:  at(9, 16),
			outTime: at(18, 0),
			want:    attendance.StatusLate,
		},
		{
			name:    "late check-in wins over short hours",
			inTime:  at(9, 16),
			outTime: at(11, 0),
			want:    attendance.StatusLate,
		},
		{
			name:    "late check-in wins over long hours",
			inTime:  at(9, 16),
			outTime: at(20, 0),
			want:    attendance.StatusLate,
		},
		{
			name:    "exactly on the cutoff is not late",
			inTime:  at(9, 15),
			outTime: at(18, 0),
			want:    attendance.StatusOnTime,
		},
		{
			name:    "four hours is half-day",
			inTime:  at(9, 0),
			outTime: at(13, 0),
			want:    attendance.StatusHalfDay,
		},
		{
			name:    "more than nine hours is over-time",
			inTime:  at(9, 0),
			outTime: at(18, 30),
			want:    attendance.StatusOverTime,
		},
		{
			name:    "exactly nine hours is on-time",
			inTime:  at(9, 0),
			outTime: at(18, 0),
			want:    attendance.StatusOnTime,
		},
		{
			name:    "regular eight hour day is on-time",
			inTime:  at(9, 0),
			outTime: at(17, 0),
			want:    attendance.StatusOnTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineStatus(tt.inTime, tt.outTime))
		})
	}
}

func TestCountsAsPresent(t *testing.T) {
	assert.True(t, attendance.StatusOnTime.CountsAsPresent())
	assert.True(t, attendance.StatusLate.CountsAsPresent())
	assert.True(t, attendance.StatusOverTime.CountsAsPresent())
	assert.True(t, attendance.StatusHalfDay.CountsAsPresent())
	assert.False(t, attendance.StatusAbsent.CountsAsPresent())
}
