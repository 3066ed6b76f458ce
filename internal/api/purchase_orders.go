package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// PurchaseOrdersHandler handles purchase order endpoints.
type PurchaseOrdersHandler struct {
	store *store.Store
}

// NewPurchaseOrdersHandler creates a new PurchaseOrdersHandler.
func NewPurchaseOrdersHandler(s *store.Store) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{store: s}
}

// List handles GET /api/purchase-orders.
func (h *PurchaseOrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListPurchaseOrders()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// Create handles POST /api/purchase-orders.
func (h *PurchaseOrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.OrderNo == "" {
		writeError(w, http.StatusBadRequest, "missing order_no")
		return
	}
	if req.Status != "" && !models.ValidStatus(models.PurchaseOrderStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.CreatePurchaseOrder(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "purchase order created"})
}

// UpdateStatus handles PUT /api/purchase-orders/{id}.
func (h *PurchaseOrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.ValidStatus(models.PurchaseOrderStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.UpdatePurchaseOrderStatus(id, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "purchase order status updated"})
}
