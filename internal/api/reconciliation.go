package api

import (
	"net/http"

	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// ReconciliationHandler handles the internal balance audit.
type ReconciliationHandler struct {
	store *store.Store
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(s *store.Store) *ReconciliationHandler {
	return &ReconciliationHandler{store: s}
}

// InternalCheck handles GET /api/reconciliation/internal-check: it
// re-verifies the balance invariant across every posted voucher's
// stored lines. This catches corruption and bypassed-validator writes
// that the creation-time check could not have seen.
func (h *ReconciliationHandler) InternalCheck(w http.ResponseWriter, r *http.Request) {
	posted, err := h.store.ListVouchers(models.VoucherStatusPosted)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ledger.InternalCheck(posted))
}
