package holiday

import (
	"context"
	"sync"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/holiday"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
)

// CachedCalendar is a read-through cache over the holiday store. A pay-run
// touches the calendar once per employee; without the cache every employee
// would cost a store read.
type CachedCalendar struct {
	holidays holiday.HolidayRepository
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	cached    dates.Set
	expiresAt time.Time
}

func NewCachedCalendar(holidays holiday.HolidayRepository, ttl time.Duration) *CachedCalendar {
	return &CachedCalendar{
		holidays: holidays,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *CachedCalendar) HolidayDates(ctx context.Context) (dates.Set, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.now().Before(c.expiresAt) {
		return c.cached, nil
	}

	days, err := c.holidays.ListDates(ctx)
	if err != nil {
		// Serve the stale set rather than failing the caller.
		if c.cached != nil {
			return c.cached, nil
		}
		return nil, err
	}

	c.cached = dates.NewSet(days...)
	c.expiresAt = c.now().Add(c.ttl)
	return c.cached, nil
}

func (c *CachedCalendar) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.expiresAt = time.Time{}
}
