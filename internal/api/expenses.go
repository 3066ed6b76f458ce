package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// ExpensesHandler handles expense reimbursement endpoints.
type ExpensesHandler struct {
	store *store.Store
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(s *store.Store) *ExpensesHandler {
	return &ExpensesHandler{store: s}
}

// List handles GET /api/expenses.
func (h *ExpensesHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.store.ListExpenses()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// Create handles POST /api/expenses.
func (h *ExpensesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.Amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}
	if req.Status != "" && !models.ValidStatus(models.ExpenseStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.CreateExpense(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "expense created"})
}

// UpdateStatus handles PUT /api/expenses/{id}: the approve/reject/pay
// workflow.
func (h *ExpensesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.ValidStatus(models.ExpenseStatuses, req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.UpdateExpenseStatus(id, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "expense status updated"})
}
