package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	stored := storedEmployee(id, 5)

	employees := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (domain.Employee, error) {
			return stored, nil
		},
		CountActiveReportsFunc: func(ctx context.Context, gotID uuid.UUID) (int64, error) {
			return 0, nil
		},
		DetachReportsFunc: func(ctx context.Context, supervisorID uuid.UUID) error {
			return nil
		},
		DeleteVersionedFunc: func(ctx context.Context, gotID uuid.UUID, expectedVersion int64) error {
			return nil
		},
	}
	revisions := defaultRevisionMock()
	svc := newTestService(t, employees, revisions, defaultTxMock())

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deletes := employees.DeleteVersionedCalls()
	if len(deletes) != 1 {
		t.Fatalf("delete calls: got %d, want 1", len(deletes))
	}
	if deletes[0].ExpectedVersion != 5 {
		t.Errorf("delete must CAS on the version read in-transaction, got %d", deletes[0].ExpectedVersion)
	}

	appends := revisions.AppendCalls()
	if len(appends) != 1 {
		t.Fatalf("revision appends: got %d, want 1", len(appends))
	}
	rev := appends[0].Revision
	if rev.Kind != domain.RevisionKindDelete {
		t.Errorf("kind: got %v, want DELETE", rev.Kind)
	}
	if rev.Snapshot.EmployeeNumber != stored.EmployeeNumber || rev.Snapshot.Version != 5 {
		t.Errorf("DELETE revision must preserve the last known snapshot, got %+v", rev.Snapshot)
	}
	if rev.Metadata.Operation != domain.OperationDelete {
		t.Errorf("operation: got %v, want DELETE", rev.Metadata.Operation)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	employees := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
			return domain.Employee{}, domain.ErrNotFound
		},
	}
	revisions := defaultRevisionMock()
	svc := newTestService(t, employees, revisions, defaultTxMock())

	err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if len(revisions.AppendCalls()) != 0 {
		t.Error("no revision may be appended for a missing employee")
	}
}

func TestDelete_ActiveDependentsBlock(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	employees := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (domain.Employee, error) {
			return storedEmployee(id, 1), nil
		},
		CountActiveReportsFunc: func(ctx context.Context, gotID uuid.UUID) (int64, error) {
			return 2, nil
		},
	}
	revisions := defaultRevisionMock()
	svc := newTestService(t, employees, revisions, defaultTxMock())

	err := svc.Delete(context.Background(), id)
	if !errors.Is(err, domain.ErrDependentsExist) {
		t.Fatalf("got %v, want ErrDependentsExist", err)
	}
	if len(employees.DeleteVersionedCalls()) != 0 {
		t.Error("delete must not run while active dependents exist")
	}
	if len(revisions.AppendCalls()) != 0 {
		t.Error("no revision may be appended for a blocked delete")
	}
}

func TestDelete_InactiveDependentsDetachedThenDeleted(t *testing.T) {
	t.Parallel()

	// Dependents in INACTIVE or TERMINATED status do not block deletion;
	// CountActiveReports already filters to ACTIVE. Their supervisor link
	// still references the row being deleted, so it must be cleared before
	// the delete or the foreign key rejects it.
	id := uuid.New()
	var detachedBeforeDelete bool
	employees := &employeeRepoMock{}
	*employees = employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (domain.Employee, error) {
			return storedEmployee(id, 1), nil
		},
		CountActiveReportsFunc: func(ctx context.Context, gotID uuid.UUID) (int64, error) {
			return 0, nil
		},
		DetachReportsFunc: func(ctx context.Context, supervisorID uuid.UUID) error {
			return nil
		},
		DeleteVersionedFunc: func(ctx context.Context, gotID uuid.UUID, expectedVersion int64) error {
			detachedBeforeDelete = len(employees.DetachReportsCalls()) == 1
			return nil
		},
	}
	svc := newTestService(t, employees, defaultRevisionMock(), defaultTxMock())

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detaches := employees.DetachReportsCalls()
	if len(detaches) != 1 {
		t.Fatalf("detach calls: got %d, want 1", len(detaches))
	}
	if detaches[0].SupervisorID != id {
		t.Errorf("detach supervisor: got %s, want %s", detaches[0].SupervisorID, id)
	}
	if !detachedBeforeDelete {
		t.Error("reports must be detached before the row delete runs")
	}
}

func TestDelete_DetachFailureAbortsCommit(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	boom := errors.New("connection reset")
	employees := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (domain.Employee, error) {
			return storedEmployee(id, 1), nil
		},
		CountActiveReportsFunc: func(ctx context.Context, gotID uuid.UUID) (int64, error) {
			return 0, nil
		},
		DetachReportsFunc: func(ctx context.Context, supervisorID uuid.UUID) error {
			return boom
		},
	}
	revisions := defaultRevisionMock()
	svc := newTestService(t, employees, revisions, defaultTxMock())

	err := svc.Delete(context.Background(), id)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want detach error", err)
	}
	if len(employees.DeleteVersionedCalls()) != 0 {
		t.Error("delete must not run when detaching reports fails")
	}
	if len(revisions.AppendCalls()) != 0 {
		t.Error("no revision may be appended when the transaction aborts")
	}
}

func TestDelete_RaceLosesToConcurrentCommit(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	employees := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (domain.Employee, error) {
			return storedEmployee(id, 1), nil
		},
		CountActiveReportsFunc: func(ctx context.Context, gotID uuid.UUID) (int64, error) {
			return 0, nil
		},
		DetachReportsFunc: func(ctx context.Context, supervisorID uuid.UUID) error {
			return nil
		},
		DeleteVersionedFunc: func(ctx context.Context, gotID uuid.UUID, expectedVersion int64) error {
			return domain.ErrVersionConflict
		},
	}
	revisions := defaultRevisionMock()
	svc := newTestService(t, employees, revisions, defaultTxMock())

	err := svc.Delete(context.Background(), id)
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("got %v, want ErrVersionConflict", err)
	}
	if len(revisions.AppendCalls()) != 0 {
		t.Error("no revision may be appended when the delete loses the race")
	}
}
