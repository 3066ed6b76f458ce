package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// TaxRecordsHandler handles tax record endpoints.
type TaxRecordsHandler struct {
	store *store.Store
}

// NewTaxRecordsHandler creates a new TaxRecordsHandler.
func NewTaxRecordsHandler(s *store.Store) *TaxRecordsHandler {
	return &TaxRecordsHandler{store: s}
}

// List handles GET /api/tax-records.
func (h *TaxRecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListTaxRecords()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Create handles POST /api/tax-records.
func (h *TaxRecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaxRecordRequest
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
	if req.Status != "" && !models.ValidStatus(models.TaxRecordStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.CreateTaxRecord(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "tax record created"})
}

// UpdateStatus handles PUT /api/tax-records/{id}.
func (h *TaxRecordsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.ValidStatus(models.TaxRecordStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.UpdateTaxRecordStatus(id, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "tax record status updated"})
}
