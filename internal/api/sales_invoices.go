package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// SalesInvoicesHandler handles sales invoice endpoints.
type SalesInvoicesHandler struct {
	store *store.Store
}

// NewSalesInvoicesHandler creates a new SalesInvoicesHandler.
func NewSalesInvoicesHandler(s *store.Store) *SalesInvoicesHandler {
	return &SalesInvoicesHandler{store: s}
}

// List handles GET /api/sales-invoices.
func (h *SalesInvoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.store.ListSalesInvoices()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

// Create handles POST /api/sales-invoices.
func (h *SalesInvoicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSalesInvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.InvoiceNo == "" {
		writeError(w, http.StatusBadRequest, "missing invoice_no")
		return
	}
	if req.Status != "" && !models.ValidStatus(models.SalesInvoiceStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.CreateSalesInvoice(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "sales invoice created"})
}

// UpdateStatus handles PUT /api/sales-invoices/{id}.
func (h *SalesInvoicesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.ValidStatus(models.SalesInvoiceStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.UpdateSalesInvoiceStatus(id, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "sales invoice status updated"})
}
