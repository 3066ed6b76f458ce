package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// PeriodsHandler handles accounting period endpoints.
type PeriodsHandler struct {
	store *store.Store
}

// NewPeriodsHandler creates a new PeriodsHandler.
func NewPeriodsHandler(s *store.Store) *PeriodsHandler {
	return &PeriodsHandler{store: s}
}

// List handles GET /api/periods.
func (h *PeriodsHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.store.ListPeriods()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, periods)
}

// Create handles POST /api/periods.
func (h *PeriodsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.Period == "" {
		writeError(w, http.StatusBadRequest, "missing period")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "invalid period type")
		return
	}

	if err := h.store.CreatePeriod(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "period created"})
}

// Close handles POST /api/periods/{id}/close. The close is refused
// while pending vouchers remain dated inside the period.
func (h *PeriodsHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ClosePeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.store.ClosePeriod(id, req.ClosedBy); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "period closed"})
}

// Reopen handles POST /api/periods/{id}/reopen.
func (h *PeriodsHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.ReopenPeriod(id); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "period reopened"})
}
