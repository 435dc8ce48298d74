package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// ListRevisions returns the employee's full history in commit order,
// ascending by revision number. The history outlives the employee row, so
// this also serves ids that have been deleted.
func (s *Service) ListRevisions(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error) {
	revisions, err := s.revisions.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	return revisions, nil
}

// GetRevision returns one of the employee's revisions by number.
func (s *Service) GetRevision(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error) {
	rev, err := s.revisions.GetByNumber(ctx, employeeID, number)
	if err != nil {
		return domain.Revision{}, fmt.Errorf("get revision: %w", err)
	}
	return rev, nil
}

// LastRevision returns the most recent revision for the employee.
func (s *Service) LastRevision(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error) {
	rev, err := s.revisions.Last(ctx, employeeID)
	if err != nil {
		return domain.Revision{}, fmt.Errorf("last revision: %w", err)
	}
	return rev, nil
}
