package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	MonthLog(ctx context.Context, employeeID string, month string) (MonthLogResponse, error)
	DailyLog(ctx context.Context, date string) ([]AttendanceResponse, error)
}
