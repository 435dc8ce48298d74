package employee

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

var (
	_ employeeRepo = &employeeRepoMock{}
	_ revisionRepo = &revisionRepoMock{}
	_ txManager    = &txManagerMock{}
)

// ---------------------------------------------------------------------------
// employeeRepoMock
// ---------------------------------------------------------------------------

type employeeRepoMock struct {
	CreateFunc             func(ctx context.Context, e *domain.Employee) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	GetByNumberFunc        func(ctx context.Context, employeeNumber string) (domain.Employee, error)
	UpdateVersionedFunc    func(ctx context.Context, e *domain.Employee, expectedVersion int64) error
	DeleteVersionedFunc    func(ctx context.Context, id uuid.UUID, expectedVersion int64) error
	DetachReportsFunc      func(ctx context.Context, supervisorID uuid.UUID) error
	SearchFunc             func(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int64, error)
	ExistsFunc             func(ctx context.Context, id uuid.UUID) (bool, error)
	SupervisorOfFunc       func(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	CountActiveReportsFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	CountAllFunc           func(ctx context.Context) (int64, error)

	calls struct {
		Create          []struct{ Employee *domain.Employee }
		GetByID         []struct{ ID uuid.UUID }
		UpdateVersioned []struct {
			Employee        *domain.Employee
			ExpectedVersion int64
		}
		DeleteVersioned []struct {
			ID              uuid.UUID
			ExpectedVersion int64
		}
		DetachReports []struct{ SupervisorID uuid.UUID }
		SupervisorOf []struct{ ID uuid.UUID }
	}
	mu sync.Mutex
}

func (m *employeeRepoMock) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFunc == nil {
		panic("employeeRepoMock.CreateFunc: method is nil but employeeRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Employee *domain.Employee }{e})
	m.mu.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *employeeRepoMock) CreateCalls() []struct{ Employee *domain.Employee } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *employeeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	if m.GetByIDFunc == nil {
		panic("employeeRepoMock.GetByIDFunc: method is nil but employeeRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *employeeRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *employeeRepoMock) GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error) {
	if m.GetByNumberFunc == nil {
		panic("employeeRepoMock.GetByNumberFunc: method is nil but employeeRepo.GetByNumber was just called")
	}
	return m.GetByNumberFunc(ctx, employeeNumber)
}

func (m *employeeRepoMock) UpdateVersioned(ctx context.Context, e *domain.Employee, expectedVersion int64) error {
	if m.UpdateVersionedFunc == nil {
		panic("employeeRepoMock.UpdateVersionedFunc: method is nil but employeeRepo.UpdateVersioned was just called")
	}
	m.mu.Lock()
	m.calls.UpdateVersioned = append(m.calls.UpdateVersioned, struct {
		Employee        *domain.Employee
		ExpectedVersion int64
	}{e, expectedVersion})
	m.mu.Unlock()
	return m.UpdateVersionedFunc(ctx, e, expectedVersion)
}

func (m *employeeRepoMock) UpdateVersionedCalls() []struct {
	Employee        *domain.Employee
	ExpectedVersion int64
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateVersioned
}

func (m *employeeRepoMock) DeleteVersioned(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	if m.DeleteVersionedFunc == nil {
		panic("employeeRepoMock.DeleteVersionedFunc: method is nil but employeeRepo.DeleteVersioned was just called")
	}
	m.mu.Lock()
	m.calls.DeleteVersioned = append(m.calls.DeleteVersioned, struct {
		ID              uuid.UUID
		ExpectedVersion int64
	}{id, expectedVersion})
	m.mu.Unlock()
	return m.DeleteVersionedFunc(ctx, id, expectedVersion)
}

func (m *employeeRepoMock) DeleteVersionedCalls() []struct {
	ID              uuid.UUID
	ExpectedVersion int64
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteVersioned
}

func (m *employeeRepoMock) DetachReports(ctx context.Context, supervisorID uuid.UUID) error {
	if m.DetachReportsFunc == nil {
		panic("employeeRepoMock.DetachReportsFunc: method is nil but employeeRepo.DetachReports was just called")
	}
	m.mu.Lock()
	m.calls.DetachReports = append(m.calls.DetachReports, struct{ SupervisorID uuid.UUID }{supervisorID})
	m.mu.Unlock()
	return m.DetachReportsFunc(ctx, supervisorID)
}

func (m *employeeRepoMock) DetachReportsCalls() []struct{ SupervisorID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DetachReports
}

func (m *employeeRepoMock) Search(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int64, error) {
	if m.SearchFunc == nil {
		panic("employeeRepoMock.SearchFunc: method is nil but employeeRepo.Search was just called")
	}
	return m.SearchFunc(ctx, filter)
}

func (m *employeeRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc == nil {
		panic("employeeRepoMock.ExistsFunc: method is nil but employeeRepo.Exists was just called")
	}
	return m.ExistsFunc(ctx, id)
}

func (m *employeeRepoMock) SupervisorOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	if m.SupervisorOfFunc == nil {
		panic("employeeRepoMock.SupervisorOfFunc: method is nil but employeeRepo.SupervisorOf was just called")
	}
	m.mu.Lock()
	m.calls.SupervisorOf = append(m.calls.SupervisorOf, struct{ ID uuid.UUID }{id})
	m.mu.Unlock()
	return m.SupervisorOfFunc(ctx, id)
}

func (m *employeeRepoMock) SupervisorOfCalls() []struct{ ID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SupervisorOf
}

func (m *employeeRepoMock) CountActiveReports(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountActiveReportsFunc == nil {
		panic("employeeRepoMock.CountActiveReportsFunc: method is nil but employeeRepo.CountActiveReports was just called")
	}
	return m.CountActiveReportsFunc(ctx, id)
}

func (m *employeeRepoMock) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc == nil {
		panic("employeeRepoMock.CountAllFunc: method is nil but employeeRepo.CountAll was just called")
	}
	return m.CountAllFunc(ctx)
}

// ---------------------------------------------------------------------------
// revisionRepoMock
// ---------------------------------------------------------------------------

type revisionRepoMock struct {
	AppendFunc         func(ctx context.Context, rev *domain.Revision) error
	ListByEmployeeFunc func(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error)
	GetByNumberFunc    func(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error)
	LastFunc           func(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error)

	calls struct {
		Append []struct{ Revision *domain.Revision }
	}
	mu sync.Mutex
}

func (m *revisionRepoMock) Append(ctx context.Context, rev *domain.Revision) error {
	if m.AppendFunc == nil {
		panic("revisionRepoMock.AppendFunc: method is nil but revisionRepo.Append was just called")
	}
	m.mu.Lock()
	m.calls.Append = append(m.calls.Append, struct{ Revision *domain.Revision }{rev})
	m.mu.Unlock()
	return m.AppendFunc(ctx, rev)
}

func (m *revisionRepoMock) AppendCalls() []struct{ Revision *domain.Revision } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Append
}

func (m *revisionRepoMock) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error) {
	if m.ListByEmployeeFunc == nil {
		panic("revisionRepoMock.ListByEmployeeFunc: method is nil but revisionRepo.ListByEmployee was just called")
	}
	return m.ListByEmployeeFunc(ctx, employeeID)
}

func (m *revisionRepoMock) GetByNumber(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error) {
	if m.GetByNumberFunc == nil {
		panic("revisionRepoMock.GetByNumberFunc: method is nil but revisionRepo.GetByNumber was just called")
	}
	return m.GetByNumberFunc(ctx, employeeID, number)
}

func (m *revisionRepoMock) Last(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error) {
	if m.LastFunc == nil {
		panic("revisionRepoMock.LastFunc: method is nil but revisionRepo.Last was just called")
	}
	return m.LastFunc(ctx, employeeID)
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	mu sync.Mutex
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	m.mu.Lock()
	m.calls.RunInTx = append(m.calls.RunInTx, struct{}{})
	m.mu.Unlock()
	return m.RunInTxFunc(ctx, fn)
}

func (m *txManagerMock) RunInTxCalls() []struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RunInTx
}
