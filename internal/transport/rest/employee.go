package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/raghavan83/staffregistry/internal/domain"
	"github.com/raghavan83/staffregistry/internal/service/employee"
)

// employeeService defines the minimal interface needed by EmployeeHandler.
type employeeService interface {
	Create(ctx context.Context, input employee.CreateEmployeeInput) (domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, expectedVersion int64, params domain.EmployeeUpdateParams) (domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (domain.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	GetByNumber(ctx context.Context, employeeNumber string) (domain.Employee, error)
	Search(ctx context.Context, filter domain.EmployeeFilter) (employee.SearchResult, error)
	ListRevisions(ctx context.Context, employeeID uuid.UUID) ([]domain.Revision, error)
	GetRevision(ctx context.Context, employeeID uuid.UUID, number int64) (domain.Revision, error)
	LastRevision(ctx context.Context, employeeID uuid.UUID) (domain.Revision, error)
}

// EmployeeHandler serves employee REST endpoints.
type EmployeeHandler struct {
	svc employeeService
	log *slog.Logger
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(svc employeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: logger.With("handler", "employee")}
}

// Register attaches all employee routes to the mux.
func (h *EmployeeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/employees", h.Create)
	mux.HandleFunc("GET /api/v1/employees", h.Search)
	mux.HandleFunc("GET /api/v1/employees/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/employees/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/employees/{id}", h.Delete)
	mux.HandleFunc("PUT /api/v1/employees/{id}/status", h.SetStatus)
	mux.HandleFunc("GET /api/v1/employees/{id}/revisions", h.ListRevisions)
	mux.HandleFunc("GET /api/v1/employees/{id}/revisions/last", h.LastRevision)
	mux.HandleFunc("GET /api/v1/employees/{id}/revisions/{number}", h.GetRevision)
	// Registered outside /employees/{id}: a by-number segment there is
	// ambiguous against the wildcard routes and ServeMux rejects it.
	mux.HandleFunc("GET /api/v1/employee-numbers/{number}", h.GetByNumber)
}

// ---------------------------------------------------------------------------
// Request / response shapes
// ---------------------------------------------------------------------------

type createEmployeeRequest struct {
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone,omitempty"`
	Department     string     `json:"department"`
	Title          *string    `json:"title,omitempty"`
	SalaryCents    int64      `json:"salaryCents"`
	SupervisorID   *uuid.UUID `json:"supervisorId,omitempty"`
}

type updateEmployeeRequest struct {
	ExpectedVersion int64      `json:"expectedVersion"`
	FirstName       *string    `json:"firstName,omitempty"`
	LastName        *string    `json:"lastName,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Department      *string    `json:"department,omitempty"`
	Title           *string    `json:"title,omitempty"`
	SalaryCents     *int64     `json:"salaryCents,omitempty"`
	SupervisorID    *uuid.UUID `json:"supervisorId,omitempty"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type employeeResponse struct {
	ID             string     `json:"id"`
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone,omitempty"`
	Department     string     `json:"department"`
	Title          *string    `json:"title,omitempty"`
	SalaryCents    int64      `json:"salaryCents"`
	Status         string     `json:"status"`
	SupervisorID   *uuid.UUID `json:"supervisorId,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CreatedBy      string     `json:"createdBy"`
	UpdatedBy      string     `json:"updatedBy"`
}

type searchResponse struct {
	Employees []employeeResponse `json:"employees"`
	Total     int64              `json:"total"`
}

type revisionResponse struct {
	Number      int64                   `json:"number"`
	EmployeeID  string                  `json:"employeeId"`
	Kind        string                  `json:"kind"`
	Snapshot    domain.EmployeeSnapshot `json:"snapshot"`
	ActorID     string                  `json:"actorId"`
	ActorRole   string                  `json:"actorRole"`
	Origin      string                  `json:"origin"`
	Operation   string                  `json:"operation"`
	CommittedAt time.Time               `json:"committedAt"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Create handles POST /api/v1/employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.Create(r.Context(), employee.CreateEmployeeInput{
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		Title:          req.Title,
		SalaryCents:    req.SalaryCents,
		SupervisorID:   req.SupervisorID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeResponse(e))
}

// Get handles GET /api/v1/employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// GetByNumber handles GET /api/v1/employee-numbers/{number}.
func (h *EmployeeHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetByNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// Update handles PATCH /api/v1/employees/{id}.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.Update(r.Context(), id, req.ExpectedVersion, domain.EmployeeUpdateParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Title:        req.Title,
		SalaryCents:  req.SalaryCents,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// Delete handles DELETE /api/v1/employees/{id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /api/v1/employees/{id}/status.
func (h *EmployeeHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.SetStatus(r.Context(), id, domain.EmployeeStatus(req.Status))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// Search handles GET /api/v1/employees.
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := searchResponse{
		Employees: make([]employeeResponse, 0, len(result.Employees)),
		Total:     result.Total,
	}
	for _, e := range result.Employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListRevisions handles GET /api/v1/employees/{id}/revisions.
func (h *EmployeeHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	revs, err := h.svc.ListRevisions(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]revisionResponse, 0, len(revs))
	for _, rev := range revs {
		resp = append(resp, toRevisionResponse(rev))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetRevision handles GET /api/v1/employees/{id}/revisions/{number}.
func (h *EmployeeHandler) GetRevision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	number, err := strconv.ParseInt(r.PathValue("number"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid revision number")
		return
	}

	rev, err := h.svc.GetRevision(r.Context(), id, number)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRevisionResponse(rev))
}

// LastRevision handles GET /api/v1/employees/{id}/revisions/last.
func (h *EmployeeHandler) LastRevision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rev, err := h.svc.LastRevision(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRevisionResponse(rev))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(key))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return uuid.Nil, false
	}
	return id, true
}

func filterFromQuery(r *http.Request) (domain.EmployeeFilter, error) {
	q := r.URL.Query()
	var filter domain.EmployeeFilter

	if v := q.Get("firstName"); v != "" {
		filter.FirstNameContains = &v
	}
	if v := q.Get("lastName"); v != "" {
		filter.LastNameContains = &v
	}
	if v := q.Get("department"); v != "" {
		filter.Department = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.EmployeeStatus(v)
		if !status.IsValid() {
			return domain.EmployeeFilter{}, errInvalidQuery("status")
		}
		filter.Status = &status
	}
	filter.SortBy = q.Get("sortBy")
	filter.SortOrder = q.Get("sortOrder")

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return domain.EmployeeFilter{}, errInvalidQuery("limit")
		}
		filter.Limit = limit
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return domain.EmployeeFilter{}, errInvalidQuery("page")
		}
		filter.Page = page
	}

	return filter, nil
}

type errInvalidQuery string

func (e errInvalidQuery) Error() string { return "invalid query parameter: " + string(e) }

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Title:          e.Title,
		SalaryCents:    e.SalaryCents,
		Status:         e.Status.String(),
		SupervisorID:   e.SupervisorID,
		Version:        e.Version,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		CreatedBy:      e.CreatedBy,
		UpdatedBy:      e.UpdatedBy,
	}
}

func toRevisionResponse(rev domain.Revision) revisionResponse {
	return revisionResponse{
		Number:      rev.Number,
		EmployeeID:  rev.EmployeeID.String(),
		Kind:        rev.Kind.String(),
		Snapshot:    rev.Snapshot,
		ActorID:     rev.Metadata.ActorID,
		ActorRole:   rev.Metadata.ActorRole.String(),
		Origin:      rev.Metadata.Origin,
		Operation:   rev.Metadata.Operation.String(),
		CommittedAt: rev.Metadata.CommittedAt,
	}
}
