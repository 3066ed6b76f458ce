package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// partyOps binds one party table's store operations so customers and
// suppliers can share a handler.
type partyOps struct {
	create func(*models.PartyRequest) error
	update func(string, *models.PartyRequest) error
	delete func(string) error
	list   func() ([]models.Party, error)
	noun   string
}

// PartiesHandler handles customer or supplier endpoints.
type PartiesHandler struct {
	ops partyOps
}

// NewCustomersHandler creates the handler for /api/customers.
func NewCustomersHandler(s *store.Store) *PartiesHandler {
	return &PartiesHandler{ops: partyOps{
		create: s.CreateCustomer,
		update: s.UpdateCustomer,
		delete: s.DeleteCustomer,
		list:   s.ListCustomers,
		noun:   "customer",
	}}
}

// NewSuppliersHandler creates the handler for /api/suppliers.
func NewSuppliersHandler(s *store.Store) *PartiesHandler {
	return &PartiesHandler{ops: partyOps{
		create: s.CreateSupplier,
		update: s.UpdateSupplier,
		delete: s.DeleteSupplier,
		list:   s.ListSuppliers,
		noun:   "supplier",
	}}
}

// List handles GET.
func (h *PartiesHandler) List(w http.ResponseWriter, r *http.Request) {
	parties, err := h.ops.list()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, parties)
}

// Create handles POST.
func (h *PartiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PartyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	if err := h.ops.create(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: h.ops.noun + " created"})
}

// Update handles PUT /{id}.
func (h *PartiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.PartyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	if err := h.ops.update(id, &req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: h.ops.noun + " updated"})
}

// Delete handles DELETE /{id}.
func (h *PartiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ops.delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: h.ops.noun + " deleted"})
}
