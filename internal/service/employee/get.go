package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// Get returns the current state of one employee.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByNumber returns the current state of one employee by business key.
func (s *Service) GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error) {
	if employeeNumber == "" {
		return domain.Employee{}, domain.NewValidationError("employee_number", "is required")
	}

	e, err := s.employees.GetByNumber(ctx, employeeNumber)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("get employee by number: %w", err)
	}
	return e, nil
}
