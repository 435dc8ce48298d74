package domain

// EmployeeFilter contains filtering/pagination parameters for employee
// searches. All predicates are optional and combined with logical AND.
type EmployeeFilter struct {
	FirstNameContains *string
	LastNameContains  *string
	Department        *string
	Status            *EmployeeStatus

	// SortBy determines the sort column: "last_name", "employee_number",
	// "created_at", "updated_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the page size. Default: 50, max: 200.
	Limit int

	// Page is the zero-based page index. The row offset is Page times the
	// effective limit.
	Page int
}
