package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// EmployeesHandler handles employee endpoints.
type EmployeesHandler struct {
	store *store.Store
}

// NewEmployeesHandler creates a new EmployeesHandler.
func NewEmployeesHandler(s *store.Store) *EmployeesHandler {
	return &EmployeesHandler{store: s}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.ListEmployees()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
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

	if err := h.store.CreateEmployee(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "employee created"})
}

// Update handles PUT /api/employees/{id}.
func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.EmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	if err := h.store.UpdateEmployee(id, &req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "employee updated"})
}

// Delete handles DELETE /api/employees/{id}.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteEmployee(id); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "employee deleted"})
}
