package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// checkNoCycle verifies that setting newSupervisorID as the supervisor of
// employeeID keeps the supervision graph acyclic. It walks the chain upward
// from the proposed supervisor; reaching employeeID means the change would
// make the employee transitively supervise itself.
//
// The walk is bounded by the total number of employee rows. A well-formed
// graph always terminates at a root within that many steps, so exceeding the
// bound means the stored graph already contains a cycle. That is corruption,
// not caller error, and surfaces as ErrIntegrityViolation.
//
// Callers must run this inside the mutation's transaction so the walk and
// the write observe the same snapshot.
func (s *Service) checkNoCycle(ctx context.Context, employeeID, newSupervisorID uuid.UUID) error {
	if newSupervisorID == employeeID {
		return fmt.Errorf("employee %s: %w", employeeID, domain.ErrCycleDetected)
	}

	bound, err := s.employees.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("hierarchy bound: %w", err)
	}

	current := newSupervisorID
	for steps := int64(0); steps <= bound; steps++ {
		supervisor, err := s.employees.SupervisorOf(ctx, current)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// A chain link pointing at a missing row should be impossible
				// under the foreign key; report corruption rather than hide it.
				return fmt.Errorf("dangling supervisor link at %s: %w", current, domain.ErrIntegrityViolation)
			}
			return fmt.Errorf("walk supervisor chain: %w", err)
		}

		if supervisor == nil {
			return nil // reached a root, no cycle
		}
		if *supervisor == employeeID {
			return fmt.Errorf("employee %s: %w", employeeID, domain.ErrCycleDetected)
		}
		current = *supervisor
	}

	return fmt.Errorf("supervisor chain exceeds %d employees: %w", bound, domain.ErrIntegrityViolation)
}

// checkNoActiveDependents blocks deletion of an employee who still supervises
// ACTIVE employees.
func (s *Service) checkNoActiveDependents(ctx context.Context, id uuid.UUID) error {
	count, err := s.employees.CountActiveReports(ctx, id)
	if err != nil {
		return fmt.Errorf("count active reports: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("employee %s has %d active reports: %w", id, count, domain.ErrDependentsExist)
	}
	return nil
}
