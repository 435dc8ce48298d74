package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// Delete removes an employee's current-state row and commits a terminal
// DELETE revision preserving the last known snapshot. Deletion is blocked
// with ErrDependentsExist while the employee still supervises anyone in
// ACTIVE status. The revision history is retained forever; the id is never
// reused.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	meta := captureMetadata(ctx, domain.OperationDelete)

	var employeeNumber string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.employees.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("load employee: %w", err)
		}
		employeeNumber = current.EmployeeNumber

		if err := s.checkNoActiveDependents(txCtx, id); err != nil {
			return err
		}

		// Any remaining reports are non-ACTIVE at this point. Clear their
		// supervisor link before the row delete, which would otherwise trip
		// the self-referencing foreign key.
		if err := s.employees.DetachReports(txCtx, id); err != nil {
			return fmt.Errorf("detach reports: %w", err)
		}

		// CAS on the version read in this transaction. A concurrent commit
		// between the read and the delete surfaces as ErrVersionConflict.
		if err := s.employees.DeleteVersioned(txCtx, id, current.Version); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}

		rev := domain.Revision{
			EmployeeID: id,
			Kind:       domain.RevisionKindDelete,
			Snapshot:   domain.SnapshotOf(&current),
			Metadata:   meta,
		}
		if err := s.revisions.Append(txCtx, &rev); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "employee deleted",
		slog.String("employee_id", id.String()),
		slog.String("employee_number", employeeNumber),
		slog.String("actor", meta.ActorID),
	)

	return nil
}
