package employee

import (
	"context"
	"fmt"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// SearchResult is one page of matching employees plus the total match count
// before pagination.
type SearchResult struct {
	Employees []domain.Employee
	Total     int64
}

// Search returns a read-only snapshot of current state matching the filter.
// Results never include revision history and never observe uncommitted
// mutations.
func (s *Service) Search(ctx context.Context, filter domain.EmployeeFilter) (SearchResult, error) {
	if s.limits.Default > 0 && filter.Limit <= 0 {
		filter.Limit = s.limits.Default
	}
	if s.limits.Max > 0 && filter.Limit > s.limits.Max {
		filter.Limit = s.limits.Max
	}

	employees, total, err := s.employees.Search(ctx, filter)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search employees: %w", err)
	}

	return SearchResult{Employees: employees, Total: total}, nil
}
