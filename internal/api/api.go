// Package api implements the JSON REST surface over the store and the
// ledger core. One handler struct per resource; shared response
// helpers below.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tallybook/tallybook/internal/store"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a bare success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse acknowledges a create with the caller-assigned ID.
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON parses the request body into v, answering 400 itself on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse request body")
		return false
	}
	return true
}

// writeStoreError maps persistence errors onto HTTP statuses. Handlers
// with resource-specific semantics (the duplicate voucher number
// message, for one) intercept those cases before calling this.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrAccountReferenced):
		writeError(w, http.StatusConflict, "account is referenced by existing vouchers")
	case errors.Is(err, store.ErrPeriodCheckFailed):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrPeriodNotOpen):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
