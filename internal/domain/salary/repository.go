package salary

import "context"

type StructureRepository interface {
	Create(ctx context.Context, s Structure) (Structure, error)
	// LatestByEmployee returns the authoritative structure for a pay cycle:
	// ordered by effective_from desc, created_at desc.
	LatestByEmployee(ctx context.Context, employeeID string) (Structure, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Structure, error)
}
