package employee

import (
	"strings"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
)

const (
	maxNameLen       = 200
	maxEmailLen      = 320
	maxDepartmentLen = 200
)

// CreateEmployeeInput carries the attributes for a new employee record.
// The employee number is the externally assigned business key and is
// immutable after creation.
type CreateEmployeeInput struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Phone          *string
	Department     string
	Title          *string
	SalaryCents    int64
	SupervisorID   *uuid.UUID
}

// Validate checks the input and returns a ValidationError listing every
// failed field.
func (in CreateEmployeeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.EmployeeNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "employee_number", Message: "is required"})
	}
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "is required"})
	} else if len(in.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "is required"})
	} else if len(in.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	errs = append(errs, validateEmail(in.Email)...)
	if strings.TrimSpace(in.Department) == "" {
		errs = append(errs, domain.FieldError{Field: "department", Message: "is required"})
	} else if len(in.Department) > maxDepartmentLen {
		errs = append(errs, domain.FieldError{Field: "department", Message: "too long"})
	}
	if in.SalaryCents < 0 {
		errs = append(errs, domain.FieldError{Field: "salary_cents", Message: "must not be negative"})
	}
	if in.SupervisorID != nil && *in.SupervisorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "supervisor_id", Message: "must be a valid id"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateUpdateParams checks a partial update. Nil fields are skipped; a
// provided field must still hold a usable value.
func validateUpdateParams(p domain.EmployeeUpdateParams) error {
	var errs []domain.FieldError

	if p.FirstName != nil {
		if strings.TrimSpace(*p.FirstName) == "" {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "must not be empty"})
		} else if len(*p.FirstName) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
		}
	}
	if p.LastName != nil {
		if strings.TrimSpace(*p.LastName) == "" {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "must not be empty"})
		} else if len(*p.LastName) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
		}
	}
	if p.Email != nil {
		errs = append(errs, validateEmail(*p.Email)...)
	}
	if p.Department != nil {
		if strings.TrimSpace(*p.Department) == "" {
			errs = append(errs, domain.FieldError{Field: "department", Message: "must not be empty"})
		} else if len(*p.Department) > maxDepartmentLen {
			errs = append(errs, domain.FieldError{Field: "department", Message: "too long"})
		}
	}
	if p.SalaryCents != nil && *p.SalaryCents < 0 {
		errs = append(errs, domain.FieldError{Field: "salary_cents", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "is required"}}
	case len(email) > maxEmailLen:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	case !strings.Contains(email, "@"):
		return []domain.FieldError{{Field: "email", Message: "must be a valid address"}}
	}
	return nil
}
