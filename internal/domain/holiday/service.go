package holiday

import (
	"context"

	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
)

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]HolidayResponse, error)
}

// Calendar provides the holiday date set to the payroll engine. Implemented
// as a read-through cache over the repository so a pay-run over many
// employees does not re-read the store per employee.
type Calendar interface {
	HolidayDates(ctx context.Context) (dates.Set, error)
	Invalidate()
}
