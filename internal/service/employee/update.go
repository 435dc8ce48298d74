package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// Update applies a partial update guarded by an expected version and commits
// it atomically with its UPDATE revision. A stored version different from
// expectedVersion yields ErrVersionConflict and leaves the record untouched;
// the caller must re-fetch and retry. A supervisor change is re-validated
// for resolution and acyclicity inside the same transaction as the write.
func (s *Service) Update(ctx context.Context, id uuid.UUID, expectedVersion int64, params domain.EmployeeUpdateParams) (domain.Employee, error) {
	if err := validateUpdateParams(params); err != nil {
		return domain.Employee{}, err
	}

	meta := captureMetadata(ctx, domain.OperationUpdate)

	var e domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.employees.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("load employee: %w", err)
		}

		// Fail fast on a stale expectation. The compare-and-swap below
		// remains the authoritative check.
		if current.Version != expectedVersion {
			return fmt.Errorf("employee %s at version %d, expected %d: %w",
				id, current.Version, expectedVersion, domain.ErrVersionConflict)
		}

		if params.SupervisorChanged(current.SupervisorID) && params.SupervisorID != nil && *params.SupervisorID != uuid.Nil {
			exists, err := s.employees.Exists(txCtx, *params.SupervisorID)
			if err != nil {
				return fmt.Errorf("resolve supervisor: %w", err)
			}
			if !exists {
				return fmt.Errorf("supervisor %s: %w", *params.SupervisorID, domain.ErrNotFound)
			}
			if err := s.checkNoCycle(txCtx, id, *params.SupervisorID); err != nil {
				return err
			}
		}

		e = applyUpdate(current, params)
		e.UpdatedAt = meta.CommittedAt
		e.UpdatedBy = meta.ActorID

		if err := s.employees.UpdateVersioned(txCtx, &e, expectedVersion); err != nil {
			return fmt.Errorf("update employee: %w", err)
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

	s.log.InfoContext(ctx, "employee updated",
		slog.String("employee_id", e.ID.String()),
		slog.Int64("version", e.Version),
		slog.String("actor", meta.ActorID),
	)

	return e, nil
}

// applyUpdate merges params into a copy of current. Nil fields stay
// unchanged; a SupervisorID of uuid.Nil clears the supervisor.
func applyUpdate(current domain.Employee, params domain.EmployeeUpdateParams) domain.Employee {
	e := current

	if params.FirstName != nil {
		e.FirstName = strings.TrimSpace(*params.FirstName)
	}
	if params.LastName != nil {
		e.LastName = strings.TrimSpace(*params.LastName)
	}
	if params.Email != nil {
		e.Email = strings.TrimSpace(*params.Email)
	}
	if params.Phone != nil {
		e.Phone = trimOrNil(params.Phone)
	}
	if params.Department != nil {
		e.Department = strings.TrimSpace(*params.Department)
	}
	if params.Title != nil {
		e.Title = trimOrNil(params.Title)
	}
	if params.SalaryCents != nil {
		e.SalaryCents = *params.SalaryCents
	}
	if params.SupervisorID != nil {
		if *params.SupervisorID == uuid.Nil {
			e.SupervisorID = nil
		} else {
			id := *params.SupervisorID
			e.SupervisorID = &id
		}
	}

	return e
}
