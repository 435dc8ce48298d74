package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the current-state record for one tracked person.
// Version starts at 1 on creation and increases by exactly 1 per committed
// mutation; every commit is mirrored by one Revision.
type Employee struct {
	ID             uuid.UUID
	EmployeeNumber string // business key, immutable after creation
	FirstName      string
	LastName       string
	Email          string // unique contact identifier
	Phone          *string
	Department     string
	Title          *string
	SalaryCents    int64
	Status         EmployeeStatus
	SupervisorID   *uuid.UUID
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
	UpdatedBy      string
}

// IsActive reports whether the employee is in ACTIVE status.
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// EmployeeUpdateParams carries a partial update. Nil pointer fields are left
// unchanged. For SupervisorID, a pointer to uuid.Nil clears the supervisor.
type EmployeeUpdateParams struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Department   *string
	Title        *string
	SalaryCents  *int64
	SupervisorID *uuid.UUID
}

// SupervisorChanged reports whether params propose a supervisor different
// from current (nil means unchanged, uuid.Nil means clear).
func (p EmployeeUpdateParams) SupervisorChanged(current *uuid.UUID) bool {
	if p.SupervisorID == nil {
		return false
	}
	if *p.SupervisorID == uuid.Nil {
		return current != nil
	}
	return current == nil || *current != *p.SupervisorID
}
