package payslip

import "context"

type SlipService interface {
	Generate(ctx context.Context, req GenerateSlipRequest) (SlipResponse, error)
	Publish(ctx context.Context, id string, published bool) (SlipResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, publishedOnly bool) ([]SlipResponse, error)
	Download(ctx context.Context, id string) ([]byte, string, error)
}
