package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHolidayRepo struct {
	days      []time.Time
	listCalls int
	failNext  bool
}

func (f *countingHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *countingHolidayRepo) Update(_ context.Context, _ holiday.UpdateHolidayRequest) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *countingHolidayRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func (f *countingHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *countingHolidayRepo) ListDates(_ context.Context) ([]time.Time, error) {
	f.listCalls++
	if f.failNext {
		return nil, errors.New("holiday store unavailable")
	}
	return f.days, nil
}

func TestCachedCalendarReadsStoreOnce(t *testing.T) {
	repo := &countingHolidayRepo{days: []time.Time{
		time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
	}}
	calendar := NewCachedCalendar(repo, time.Minute)

	first, err := calendar.HolidayDates(context.Background())
	require.NoError(t, err)
	assert.True(t, first.Contains(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))

	_, err = calendar.HolidayDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCachedCalendarInvalidateForcesReload(t *testing.T) {
	repo := &countingHolidayRepo{}
	calendar := NewCachedCalendar(repo, time.Minute)

	_, err := calendar.HolidayDates(context.Background())
	require.NoError(t, err)

	calendar.Invalidate()

	_, err = calendar.HolidayDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCachedCalendarExpiresAfterTTL(t *testing.T) {
	repo := &countingHolidayRepo{}
	calendar := NewCachedCalendar(repo, time.Minute)

	clock := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	calendar.now = func() time.Time { return clock }

	_, err := calendar.HolidayDates(context.Background())
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)

	_, err = calendar.HolidayDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCachedCalendarServesStaleOnStoreError(t *testing.T) {
	repo := &countingHolidayRepo{days: []time.Time{
		time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
	}}
	calendar := NewCachedCalendar(repo, time.Minute)

	clock := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	calendar.now = func() time.Time { return clock }

	_, err := calendar.HolidayDates(context.Background())
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	repo.failNext = true

	set, err := calendar.HolidayDates(context.Background())
	require.NoError(t, err)
	assert.True(t, set.Contains(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))
}
