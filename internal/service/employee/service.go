// Package employee implements the registry's mutation and query operations:
// optimistic-concurrency writes, atomic revision logging, and supervision
// hierarchy checks.
package employee

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

type employeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error)
	UpdateVersioned(ctx context.Context, e *domain.Employee, expectedVersion int64) error
	DeleteVersioned(ctx context.Context, id uuid.UUID, expectedVersion int64) error
	DetachReports(ctx context.Context, supervisorID uuid.UUID) error
	Search(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int64, error)

	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SupervisorOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	CountActiveReports(ctx context.Context, id uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type revisionRepo interface {
	Append(ctx context.Context, rev *domain.Revision) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error)
	GetByNumber(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error)
	Last(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SearchLimits bounds page sizes for Search. Zero values fall back to the
// storage layer's own clamps.
type SearchLimits struct {
	Default int
	Max     int
}

// Service provides employee registry operations.
type Service struct {
	employees employeeRepo
	revisions revisionRepo
	tx        txManager
	limits    SearchLimits
	log       *slog.Logger
}

// NewService creates a new employee service.
func NewService(
	log *slog.Logger,
	employees employeeRepo,
	revisions revisionRepo,
	tx txManager,
	limits SearchLimits,
) *Service {
	return &Service{
		employees: employees,
		revisions: revisions,
		tx:        tx,
		limits:    limits,
		log:       log.With("service", "employee"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
