package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"

	"tiffinbox/logging"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	var pqErr *pq.Error
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAlreadyRated):
		return http.StatusConflict
	case service.IsValidation(err):
		return http.StatusBadRequest
	case errors.As(err, &pqErr) && pqErr.Code == uniqueViolation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors onto status codes. Unexpected errors are
// logged, and carry a stack trace outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{Message: err.Error()}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		resp.Message = "duplicate value: " + pqErr.Constraint
	}
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context(), h.Log).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		if !h.Production {
			resp.Stack = string(debug.Stack())
		}
	}
	writeJSON(w, status, resp)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func pathInt(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, service.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ValidationError{Field: name, Message: "must be an integer"}
	}
	return n, nil
}
