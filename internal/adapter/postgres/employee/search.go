package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	postgres "github.com/raghavan83/staffregistry/internal/adapter/postgres"
	"github.com/raghavan83/staffregistry/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// sortColumns whitelists sortable columns. Anything else falls back to
// created_at so caller input can never reach the ORDER BY clause raw.
var sortColumns = map[string]string{
	"last_name":       "last_name",
	"employee_number": "employee_number",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
}

// Search returns a page of employees matching the filter plus the total
// number of matches before pagination. Substring predicates are
// case-insensitive. The sort always ends with a tiebreak on id so pages are
// stable across requests.
func (r *Repo) Search(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query := buildSearchQuery(filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "employees", "search")
	}
	defer rows.Close()

	var (
		employees []domain.Employee
		total     int64
	)
	for rows.Next() {
		var (
			e      domain.Employee
			status string
		)
		err := rows.Scan(
			&e.ID, &e.EmployeeNumber, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
			&e.Department, &e.Title, &e.SalaryCents, &status, &e.SupervisorID, &e.Version,
			&e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee row: %w", err)
		}
		e.Status = domain.EmployeeStatus(status)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate employee rows: %w", err)
	}

	if employees == nil {
		employees = []domain.Employee{}
	}

	return employees, total, nil
}

func buildSearchQuery(filter domain.EmployeeFilter) squirrel.SelectBuilder {
	query := squirrel.Select(
		"id", "employee_number", "first_name", "last_name", "email", "phone",
		"department", "title", "salary_cents", "status", "supervisor_id", "version",
		"created_at", "updated_at", "created_by", "updated_by",
		"count(*) OVER() AS total",
	).
		From("employees").
		PlaceholderFormat(squirrel.Dollar)

	if filter.FirstNameContains != nil && *filter.FirstNameContains != "" {
		query = query.Where(squirrel.ILike{"first_name": "%" + escapeLike(*filter.FirstNameContains) + "%"})
	}
	if filter.LastNameContains != nil && *filter.LastNameContains != "" {
		query = query.Where(squirrel.ILike{"last_name": "%" + escapeLike(*filter.LastNameContains) + "%"})
	}
	if filter.Department != nil && *filter.Department != "" {
		query = query.Where(squirrel.Eq{"department": *filter.Department})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": filter.Status.String()})
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "ASC") {
		order = "ASC"
	}
	query = query.OrderBy(column+" "+order, "id ASC")

	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	query = query.Limit(uint64(limit))

	if filter.Page > 0 {
		query = query.Offset(uint64(filter.Page) * uint64(limit))
	}

	return query
}

// escapeLike neutralizes LIKE metacharacters in user-provided substrings.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
