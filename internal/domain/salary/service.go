package salary

import "context"

type StructureService interface {
	Revise(ctx context.Context, req ReviseStructureRequest) (StructureResponse, error)
	Latest(ctx context.Context, employeeID string) (StructureResponse, error)
	History(ctx context.Context, employeeID string) ([]StructureResponse, error)
}
