package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Holiday, error)
	ListDates(ctx context.Context) ([]time.Time, error)
}
