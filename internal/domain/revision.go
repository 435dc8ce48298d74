package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel values used when the ambient context carries no actor metadata.
// Capture degrades to these instead of failing a mutation.
const (
	AnonymousActorID = "anonymous"
	DefaultActorRole = ActorRoleSystem
	UnknownOrigin    = "unknown"
)

// Revision is one immutable, numbered audit record of a single committed
// mutation. Number is globally strictly increasing and never reused, even
// across employees. Revisions are never mutated or deleted once committed.
type Revision struct {
	Number     int64
	EmployeeID uuid.UUID
	Kind       RevisionKind
	Snapshot   EmployeeSnapshot
	Metadata   RevisionMetadata
}

// RevisionMetadata attributes a committed mutation to its acting principal.
type RevisionMetadata struct {
	ActorID     string    `json:"actor_id"`
	ActorRole   ActorRole `json:"actor_role"`
	Origin      string    `json:"origin"`
	Operation   Operation `json:"operation"`
	CommittedAt time.Time `json:"committed_at"`
}

// EmployeeSnapshot is a full copy of an employee's attributes as of one
// commit. It is hand-defined rather than derived from Employee so that
// adding fields to current state never silently redefines history.
type EmployeeSnapshot struct {
	ID             uuid.UUID      `json:"id"`
	EmployeeNumber string         `json:"employee_number"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	Phone          *string        `json:"phone,omitempty"`
	Department     string         `json:"department"`
	Title          *string        `json:"title,omitempty"`
	SalaryCents    int64          `json:"salary_cents"`
	Status         EmployeeStatus `json:"status"`
	SupervisorID   *uuid.UUID     `json:"supervisor_id,omitempty"`
	Version        int64          `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	CreatedBy      string         `json:"created_by"`
	UpdatedBy      string         `json:"updated_by"`
}

// SnapshotOf captures the employee's full state for a revision record.
func SnapshotOf(e *Employee) EmployeeSnapshot {
	return EmployeeSnapshot{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Title:          e.Title,
		SalaryCents:    e.SalaryCents,
		Status:         e.Status,
		SupervisorID:   e.SupervisorID,
		Version:        e.Version,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		CreatedBy:      e.CreatedBy,
		UpdatedBy:      e.UpdatedBy,
	}
}
