package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raghavan83/staffregistry/internal/domain"
)

// handleError maps domain errors onto HTTP status codes. Conflicting writes
// (duplicate keys, lost optimistic races, blocked deletes) are all 409 so
// clients get one retryable-conflict signal; cycle rejections are 422
// because no retry can make the same request valid.
func (h *EmployeeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "duplicate key")
	case errors.Is(err, domain.ErrVersionConflict):
		writeError(w, http.StatusConflict, "version conflict")
	case errors.Is(err, domain.ErrDependentsExist):
		writeError(w, http.StatusConflict, "active dependents exist")
	case errors.Is(err, domain.ErrCycleDetected):
		writeError(w, http.StatusUnprocessableEntity, "supervision cycle detected")
	case errors.Is(err, domain.ErrStorageUnavailable):
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
	case errors.Is(err, domain.ErrIntegrityViolation):
		h.log.ErrorContext(r.Context(), "hierarchy integrity violation", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
