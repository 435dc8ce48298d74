// Package revision implements the append-only revision log using PostgreSQL.
// The table has no UPDATE or DELETE path: rows are inserted inside the same
// transaction as the mutation they describe and are never touched again.
package revision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/raghavan83/staffregistry/internal/adapter/postgres"
	"github.com/raghavan83/staffregistry/internal/domain"
)

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new revision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const revisionColumns = `revision_number, employee_id, kind, snapshot,
       actor_id, actor_role, origin, operation, committed_at`

const appendSQL = `
INSERT INTO employee_revisions (employee_id, kind, snapshot,
                                actor_id, actor_role, origin, operation, committed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING revision_number`

const listByEmployeeSQL = `
SELECT ` + revisionColumns + `
FROM employee_revisions
WHERE employee_id = $1
ORDER BY revision_number ASC`

const getByNumberSQL = `
SELECT ` + revisionColumns + `
FROM employee_revisions
WHERE employee_id = $1 AND revision_number = $2`

const lastByEmployeeSQL = `
SELECT ` + revisionColumns + `
FROM employee_revisions
WHERE employee_id = $1
ORDER BY revision_number DESC
LIMIT 1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Append inserts a revision and fills in the database-assigned number.
// The number comes from a BIGSERIAL sequence, so it is globally strictly
// increasing across all employees and never reused.
func (r *Repo) Append(ctx context.Context, rev *domain.Revision) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	snapshot, err := json.Marshal(rev.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = querier.QueryRow(ctx, appendSQL,
		rev.EmployeeID, rev.Kind.String(), snapshot,
		rev.Metadata.ActorID, rev.Metadata.ActorRole.String(),
		rev.Metadata.Origin, rev.Metadata.Operation.String(),
		rev.Metadata.CommittedAt,
	).Scan(&rev.Number)
	if err != nil {
		return postgres.MapError(err, "revision", rev.EmployeeID)
	}

	return nil
}

// ListByEmployee returns every revision recorded for the employee in commit
// order (ascending revision number). History survives deletion of the
// employee, so this works for ids that no longer resolve in employees.
func (r *Repo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByEmployeeSQL, employeeID)
	if err != nil {
		return nil, postgres.MapError(err, "revisions", employeeID)
	}
	defer rows.Close()

	return scanRevisions(rows)
}

// GetByNumber returns one of the employee's revisions by its global number.
func (r *Repo) GetByNumber(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rev, err := scanRevision(querier.QueryRow(ctx, getByNumberSQL, employeeID, number))
	if err != nil {
		return domain.Revision{}, postgres.MapError(err, "revision", number)
	}

	return rev, nil
}

// Last returns the most recent revision for the employee.
func (r *Repo) Last(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rev, err := scanRevision(querier.QueryRow(ctx, lastByEmployeeSQL, employeeID))
	if err != nil {
		return domain.Revision{}, postgres.MapError(err, "revision", employeeID)
	}

	return rev, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevision(row rowScanner) (domain.Revision, error) {
	var (
		rev       domain.Revision
		kind      string
		actorRole string
		operation string
		snapshot  []byte
	)

	err := row.Scan(
		&rev.Number, &rev.EmployeeID, &kind, &snapshot,
		&rev.Metadata.ActorID, &actorRole,
		&rev.Metadata.Origin, &operation, &rev.Metadata.CommittedAt,
	)
	if err != nil {
		return domain.Revision{}, err
	}

	if err := json.Unmarshal(snapshot, &rev.Snapshot); err != nil {
		return domain.Revision{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	rev.Kind = domain.RevisionKind(kind)
	rev.Metadata.ActorRole = domain.ActorRole(actorRole)
	rev.Metadata.Operation = domain.Operation(operation)

	return rev, nil
}

func scanRevisions(rows pgx.Rows) ([]domain.Revision, error) {
	var revisions []domain.Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if revisions == nil {
		revisions = []domain.Revision{}
	}

	return revisions, nil
}
