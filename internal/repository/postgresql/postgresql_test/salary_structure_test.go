package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/MyResearchRoom/mrrhr/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB) string {
	t.Helper()

	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, name, email, joining_date, status, ctc, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Pat Rivera', 'pat.rivera@example.com', '2023-01-01', 'active', 600000, NOW(), NOW())
		RETURNING id
	`).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func createStructure(t *testing.T, ctx context.Context, repo salary.StructureRepository, employeeID string, effectiveFrom time.Time, basic int64) salary.Structure {
	t.Helper()

	created, err := repo.Create(ctx, salary.Structure{
		EmployeeID:    employeeID,
		Earnings:      []salary.Component{{Name: "Basic", Amount: decimal.NewFromInt(basic)}},
		Deductions:    []salary.Component{{Name: "PF", Amount: decimal.NewFromInt(basic / 10)}},
		CTC:           decimal.NewFromInt(basic * 12),
		EffectiveFrom: effectiveFrom,
	})
	require.NoError(t, err)
	return created
}

func TestLatestByEmployeeSameDayCorrectionWins(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "salary_structures", "employees")

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db)
	repo := postgresql.NewSalaryStructureRepository(db)

	effective := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	original := createStructure(t, ctx, repo, employeeID, effective, 30000)
	correction := createStructure(t, ctx, repo, employeeID, effective, 32000)

	// Same effective date; the later-created revision is the correction and
	// must win the tie-break. Push its created_at forward so the test does not
	// depend on insert timestamps differing at clock resolution.
	_, err := db.Exec(ctx,
		`UPDATE salary_structures SET created_at = created_at + interval '1 hour' WHERE id = $1`,
		correction.ID)
	require.NoError(t, err)

	latest, err := repo.LatestByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, correction.ID, latest.ID)
	assert.NotEqual(t, original.ID, latest.ID)
	assert.True(t, latest.EarningTotal().Equal(decimal.NewFromInt(32000)))
}

func TestLatestByEmployeeEffectiveFromDominates(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "salary_structures", "employees")

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db)
	repo := postgresql.NewSalaryStructureRepository(db)

	current := createStructure(t, ctx, repo, employeeID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 32000)
	// Backdated revision inserted after the current one. A later created_at
	// must not beat an earlier effective date.
	backdated := createStructure(t, ctx, repo, employeeID,
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 28000)
	_, err := db.Exec(ctx,
		`UPDATE salary_structures SET created_at = created_at + interval '1 hour' WHERE id = $1`,
		backdated.ID)
	require.NoError(t, err)

	latest, err := repo.LatestByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, current.ID, latest.ID)

	history, err := repo.ListByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, current.ID, history[0].ID)
	assert.Equal(t, backdated.ID, history[1].ID)
}

func TestLatestByEmployeeNotFound(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "salary_structures", "employees")

	repo := postgresql.NewSalaryStructureRepository(db)
	_, err := repo.LatestByEmployee(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, salary.ErrStructureNotFound)
}
