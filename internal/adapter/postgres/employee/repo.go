// Package employee implements the Employee repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the dynamic search uses squirrel.
package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/raghavan83/staffregistry/internal/adapter/postgres"
	"github.com/raghavan83/staffregistry/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
// The db is normally *pgxpool.Pool; inside a transaction the querier from
// context takes precedence.
type Repo struct {
	db postgres.Querier
}

// New creates a new employee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const employeeColumns = `id, employee_number, first_name, last_name, email, phone,
       department, title, salary_cents, status, supervisor_id, version,
       created_at, updated_at, created_by, updated_by`

const getByIDSQL = `
SELECT ` + employeeColumns + `
FROM employees
WHERE id = $1`

const getByNumberSQL = `
SELECT ` + employeeColumns + `
FROM employees
WHERE employee_number = $1`

const insertSQL = `
INSERT INTO employees (id, employee_number, first_name, last_name, email, phone,
                       department, title, salary_cents, status, supervisor_id, version,
                       created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

const updateVersionedSQL = `
UPDATE employees
SET first_name = $1, last_name = $2, email = $3, phone = $4,
    department = $5, title = $6, salary_cents = $7, status = $8,
    supervisor_id = $9, version = version + 1, updated_at = $10, updated_by = $11
WHERE id = $12 AND version = $13`

const deleteVersionedSQL = `
DELETE FROM employees
WHERE id = $1 AND version = $2`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`

const supervisorOfSQL = `
SELECT supervisor_id FROM employees WHERE id = $1`

const countActiveReportsSQL = `
SELECT count(*) FROM employees
WHERE supervisor_id = $1 AND status = 'ACTIVE'`

const countAllSQL = `
SELECT count(*) FROM employees`

const detachReportsSQL = `
UPDATE employees
SET supervisor_id = NULL
WHERE supervisor_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an employee by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, postgres.MapError(err, "employee", id)
	}

	return e, nil
}

// GetByNumber returns an employee by business key.
func (r *Repo) GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByNumberSQL, employeeNumber)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, postgres.MapError(err, "employee", employeeNumber)
	}

	return e, nil
}

// Exists reports whether an employee row with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "employee", id)
	}

	return exists, nil
}

// SupervisorOf returns the supervisor_id of the given employee, nil when the
// employee has no supervisor. Returns domain.ErrNotFound for a missing row.
func (r *Repo) SupervisorOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var supervisorID *uuid.UUID
	if err := querier.QueryRow(ctx, supervisorOfSQL, id).Scan(&supervisorID); err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}

	return supervisorID, nil
}

// CountActiveReports returns the number of ACTIVE employees directly
// supervised by the given employee.
func (r *Repo) CountActiveReports(ctx context.Context, id uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int64
	if err := querier.QueryRow(ctx, countActiveReportsSQL, id).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "employee", id)
	}

	return count, nil
}

// CountAll returns the total number of employee rows. Used as the step bound
// for hierarchy walks.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int64
	if err := querier.QueryRow(ctx, countAllSQL).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "employees", "count")
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new employee row exactly as passed.
// Duplicate employee_number or email results in domain.ErrDuplicateKey.
// A supervisor_id pointing at a missing row results in domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e *domain.Employee) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, insertSQL,
		e.ID, e.EmployeeNumber, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Title, e.SalaryCents, e.Status.String(), e.SupervisorID, e.Version,
		e.CreatedAt, e.UpdatedAt, e.CreatedBy, e.UpdatedBy,
	)
	if err != nil {
		return postgres.MapError(err, "employee", e.ID)
	}

	return nil
}

// UpdateVersioned applies all mutable fields with a compare-and-swap on the
// version column. On success e.Version is advanced to the stored value.
// A zero-row update is disambiguated with an existence check: a missing row
// is domain.ErrNotFound, a surviving row is domain.ErrVersionConflict.
func (r *Repo) UpdateVersioned(ctx context.Context, e *domain.Employee, expectedVersion int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateVersionedSQL,
		e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Title, e.SalaryCents, e.Status.String(),
		e.SupervisorID, e.UpdatedAt, e.UpdatedBy,
		e.ID, expectedVersion,
	)
	if err != nil {
		return postgres.MapError(err, "employee", e.ID)
	}

	if tag.RowsAffected() == 0 {
		return r.casMiss(ctx, e.ID)
	}

	e.Version = expectedVersion + 1

	return nil
}

// DeleteVersioned removes an employee with a compare-and-swap on the version
// column, disambiguating a zero-row delete the same way as UpdateVersioned.
func (r *Repo) DeleteVersioned(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteVersionedSQL, id, expectedVersion)
	if err != nil {
		return postgres.MapError(err, "employee", id)
	}

	if tag.RowsAffected() == 0 {
		return r.casMiss(ctx, id)
	}

	return nil
}

// DetachReports clears the supervisor link on every employee reporting to
// the given supervisor. Must run before DeleteVersioned on that supervisor:
// the self-referencing foreign key has no ON DELETE action, so a row delete
// with reports still attached fails with a constraint violation.
func (r *Repo) DetachReports(ctx context.Context, supervisorID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, detachReportsSQL, supervisorID); err != nil {
		return postgres.MapError(err, "employee", supervisorID)
	}

	return nil
}

// casMiss classifies a compare-and-swap that touched zero rows.
func (r *Repo) casMiss(ctx context.Context, id uuid.UUID) error {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("employee %s: %w", id, domain.ErrVersionConflict)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var (
		e      domain.Employee
		status string
	)

	err := row.Scan(
		&e.ID, &e.EmployeeNumber, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Title, &e.SalaryCents, &status, &e.SupervisorID, &e.Version,
		&e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
	)
	if err != nil {
		return domain.Employee{}, err
	}

	e.Status = domain.EmployeeStatus(status)

	return e, nil
}
