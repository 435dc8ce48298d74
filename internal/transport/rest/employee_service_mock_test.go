package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
	"github.com/raghavan83/staffregistry/internal/service/employee"
)

var _ employeeService = &employeeServiceMock{}

type employeeServiceMock struct {
	CreateFunc        func(ctx context.Context, input employee.CreateEmployeeInput) (domain.Employee, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, expectedVersion int64, params domain.EmployeeUpdateParams) (domain.Employee, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (domain.Employee, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	GetByNumberFunc   func(ctx context.Context, employeeNumber string) (domain.Employee, error)
	SearchFunc        func(ctx context.Context, filter domain.EmployeeFilter) (employee.SearchResult, error)
	ListRevisionsFunc func(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error)
	GetRevisionFunc   func(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error)
	LastRevisionFunc  func(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error)

	calls struct {
		Create []struct {
			Input employee.CreateEmployeeInput
		}
		Update []struct {
			ID              uuid.UUID
			ExpectedVersion int64
			Params          domain.EmployeeUpdateParams
		}
		Search []struct {
			Filter domain.EmployeeFilter
		}
	}
	mu sync.Mutex
}

func (m *employeeServiceMock) Create(ctx context.Context, input employee.CreateEmployeeInput) (domain.Employee, error) {
	if m.CreateFunc == nil {
		panic("employeeServiceMock.CreateFunc: method is nil but employeeService.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		Input employee.CreateEmployeeInput
	}{Input: input})
	m.mu.Unlock()
	return m.CreateFunc(ctx, input)
}

func (m *employeeServiceMock) CreateCalls() []struct {
	Input employee.CreateEmployeeInput
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *employeeServiceMock) Update(ctx context.Context, id uuid.UUID, expectedVersion int64, params domain.EmployeeUpdateParams) (domain.Employee, error) {
	if m.UpdateFunc == nil {
		panic("employeeServiceMock.UpdateFunc: method is nil but employeeService.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, struct {
		ID              uuid.UUID
		ExpectedVersion int64
		Params          domain.EmployeeUpdateParams
	}{ID: id, ExpectedVersion: expectedVersion, Params: params})
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, expectedVersion, params)
}

func (m *employeeServiceMock) UpdateCalls() []struct {
	ID              uuid.UUID
	ExpectedVersion int64
	Params          domain.EmployeeUpdateParams
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *employeeServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("employeeServiceMock.DeleteFunc: method is nil but employeeService.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *employeeServiceMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (domain.Employee, error) {
	if m.SetStatusFunc == nil {
		panic("employeeServiceMock.SetStatusFunc: method is nil but employeeService.SetStatus was just called")
	}
	return m.SetStatusFunc(ctx, id, status)
}

func (m *employeeServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	if m.GetFunc == nil {
		panic("employeeServiceMock.GetFunc: method is nil but employeeService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *employeeServiceMock) GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error) {
	if m.GetByNumberFunc == nil {
		panic("employeeServiceMock.GetByNumberFunc: method is nil but employeeService.GetByNumber was just called")
	}
	return m.GetByNumberFunc(ctx, employeeNumber)
}

func (m *employeeServiceMock) Search(ctx context.Context, filter domain.EmployeeFilter) (employee.SearchResult, error) {
	if m.SearchFunc == nil {
		panic("employeeServiceMock.SearchFunc: method is nil but employeeService.Search was just called")
	}
	m.mu.Lock()
	m.calls.Search = append(m.calls.Search, struct {
		Filter domain.EmployeeFilter
	}{Filter: filter})
	m.mu.Unlock()
	return m.SearchFunc(ctx, filter)
}

func (m *employeeServiceMock) SearchCalls() []struct {
	Filter domain.EmployeeFilter
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Search
}

func (m *employeeServiceMock) ListRevisions(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error) {
	if m.ListRevisionsFunc == nil {
		panic("employeeServiceMock.ListRevisionsFunc: method is nil but employeeService.ListRevisions was just called")
	}
	return m.ListRevisionsFunc(ctx, employeeID)
}

func (m *employeeServiceMock) GetRevision(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error) {
	if m.GetRevisionFunc == nil {
		panic("employeeServiceMock.GetRevisionFunc: method is nil but employeeService.GetRevision was just called")
	}
	return m.GetRevisionFunc(ctx, employeeID, number)
}

func (m *employeeServiceMock) LastRevision(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error) {
	if m.LastRevisionFunc == nil {
		panic("employeeServiceMock.LastRevisionFunc: method is nil but employeeService.LastRevision was just called")
	}
	return m.LastRevisionFunc(ctx, employeeID)
}
