package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// Create registers a new employee and commits it atomically with its CREATE
// revision. The record starts at version 1 in ACTIVE status. A supervisor
// reference, if given, must resolve to an existing employee.
func (s *Service) Create(ctx context.Context, input CreateEmployeeInput) (domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return domain.Employee{}, err
	}

	meta := captureMetadata(ctx, domain.OperationCreate)

	e := domain.Employee{
		ID:             uuid.New(),
		EmployeeNumber: strings.TrimSpace(input.EmployeeNumber),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          trimOrNil(input.Phone),
		Department:     strings.TrimSpace(input.Department),
		Title:          trimOrNil(input.Title),
		SalaryCents:    input.SalaryCents,
		Status:         domain.EmployeeStatusActive,
		SupervisorID:   input.SupervisorID,
		Version:        1,
		CreatedAt:      meta.CommittedAt,
		UpdatedAt:      meta.CommittedAt,
		CreatedBy:      meta.ActorID,
		UpdatedBy:      meta.ActorID,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if e.SupervisorID != nil {
			exists, err := s.employees.Exists(txCtx, *e.SupervisorID)
			if err != nil {
				return fmt.Errorf("resolve supervisor: %w", err)
			}
			if !exists {
				return fmt.Errorf("supervisor %s: %w", *e.SupervisorID, domain.ErrNotFound)
			}
		}

		if err := s.employees.Create(txCtx, &e); err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		rev := domain.Revision{
			EmployeeID: e.ID,
			Kind:       domain.RevisionKindCreate,
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

	s.log.InfoContext(ctx, "employee created",
		slog.String("employee_id", e.ID.String()),
		slog.String("employee_number", e.EmployeeNumber),
		slog.String("actor", meta.ActorID),
	)

	return e, nil
}
