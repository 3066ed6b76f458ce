package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// AccountsHandler handles chart-of-accounts endpoints.
type AccountsHandler struct {
	store *store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s *store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// List handles GET /api/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

// Create handles POST /api/accounts.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "invalid account type")
		return
	}

	if _, err := h.store.CreateAccount(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "account created"})
}

// Update handles PUT /api/accounts/{id}.
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "invalid account type")
		return
	}

	if err := h.store.UpdateAccount(id, &req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "account updated"})
}

// Delete handles DELETE /api/accounts/{id}. Deletion is refused while
// vouchers still reference the account's code.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteAccount(id); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "account deleted"})
}

// Ledger handles GET /api/accounts/{id}/ledger: the general ledger
// projection for one account, derived from the posted vouchers.
func (h *AccountsHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.store.GetAccount(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	posted, err := h.store.ListVouchers(models.VoucherStatusPosted)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ledger.Project(*account, posted))
}
