package holiday

import (
	"context"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/holiday"
)

type service struct {
	holidays holiday.HolidayRepository
	calendar holiday.Calendar
	logger   *slog.Logger
}

// NewService builds the holiday CRUD service. Mutations invalidate the
// calendar cache so the payroll engine sees changes immediately.
func NewService(holidays holiday.HolidayRepository, calendar holiday.Calendar, logger *slog.Logger) holiday.HolidayService {
	return &service{
		holidays: holidays,
		calendar: calendar,
		logger:   logger,
	}
}

func (s *service) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.holidays.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	s.calendar.Invalidate()
	s.logger.InfoContext(ctx, "holiday created", "holiday_id", created.ID, "date", req.Date)

	return project(created), nil
}

func (s *service) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidays.Update(ctx, req)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	s.calendar.Invalidate()

	return project(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.holidays.Delete(ctx, id); err != nil {
		return err
	}

	s.calendar.Invalidate()
	s.logger.InfoContext(ctx, "holiday deleted", "holiday_id", id)

	return nil
}

func (s *service) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, project(h))
	}
	return result, nil
}

func project(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
	}
}
