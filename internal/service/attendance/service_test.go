package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	rows   map[string]attendance.Attendance // employeeID + date key
	nextID int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[string]attendance.Attendance)}
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := key(att.EmployeeID, att.Date)
	if _, ok := f.rows[k]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = string(rune('a' + f.nextID))
	f.rows[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := f.rows[key(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, outTime time.Time, status attendance.Status) (attendance.Attendance, error) {
	for k, att := range f.rows {
		if att.ID == id {
			att.OutTime = &outTime
			att.Status = status
			f.rows[k] = att
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.rows {
		if att.EmployeeID == employeeID && !att.Date.Before(from) && !att.Date.After(to) {
			result = append(result, att)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.rows {
		if att.Date.Equal(dates.Truncate(date)) {
			result = append(result, att)
		}
	}
	return result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCheckInTwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewServiceWithClock(repo, fixedClock(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)), testLogger())

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInAfterCutoffIsLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewServiceWithClock(repo, fixedClock(time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)), testLogger())

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewServiceWithClock(repo, fixedClock(time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)), testLogger())

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutReclassifies(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clock := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	now := &clock
	svc := NewServiceWithClock(repo, func() time.Time { return *now }, testLogger())

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	// Four hours later: the provisional on-time becomes half-day.
	out := time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)
	now = &out

	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)

	_, err = svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestMonthLogCountsPresentDays(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewServiceWithClock(repo, fixedClock(time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)), testLogger())

	in := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	statuses := []attendance.Status{
		attendance.StatusOnTime, attendance.StatusLate,
		attendance.StatusHalfDay, attendance.StatusAbsent,
	}
	for i, status := range statuses {
		day := time.Date(2024, 6, 3+i, 0, 0, 0, 0, time.UTC)
		_, err := repo.Create(context.Background(), attendance.Attendance{
			EmployeeID: "emp-1",
			Date:       day,
			InTime:     &in,
			Status:     status,
		})
		require.NoError(t, err)
	}

	log, err := svc.MonthLog(context.Background(), "emp-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 3, log.PresentDays)
	assert.Len(t, log.Records, 4)
}
