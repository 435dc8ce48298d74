package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// SetStatus transitions an employee's lifecycle status with the same
// versioning and atomic-commit discipline as Update. Structural fields are
// untouched, so no uniqueness or hierarchy re-validation runs. The revision
// is recorded as an UPDATE with operation SET_STATUS.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (domain.Employee, error) {
	if !status.IsValid() {
		return domain.Employee{}, domain.NewValidationError("status", "must be one of ACTIVE, INACTIVE, TERMINATED")
	}

	meta := captureMetadata(ctx, domain.OperationSetStatus)

	var e domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.employees.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("load employee: %w", err)
		}

		e = current
		e.Status = status
		e.UpdatedAt = meta.CommittedAt
		e.UpdatedBy = meta.ActorID

		if err := s.employees.UpdateVersioned(txCtx, &e, current.Version); err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		rev := domain.Revision{
			EmployeeID: e.ID,
			Kind:       domain.RevisionKindUpdate,
			Snapshot:   domain.SnapshotOf(&e),
			Metadata:   meta,
		}
		if err := s.revisions.Append(txCtx, &rev); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Employee{}, err
	}

	s.log.InfoContext(ctx, "employee status changed",
		slog.String("employee_id", e.ID.String()),
		slog.String("status", status.String()),
		slog.String("actor", meta.ActorID),
	)

	return e, nil
}
