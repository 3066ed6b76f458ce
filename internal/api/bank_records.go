package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// BankRecordsHandler handles bank statement endpoints.
type BankRecordsHandler struct {
	store *store.Store
}

// NewBankRecordsHandler creates a new BankRecordsHandler.
func NewBankRecordsHandler(s *store.Store) *BankRecordsHandler {
	return &BankRecordsHandler{store: s}
}

// List handles GET /api/bank-records.
func (h *BankRecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListBankRecords()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Create handles POST /api/bank-records.
func (h *BankRecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBankRecordRequest
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
	if !req.Direction.Valid() {
		writeError(w, http.StatusBadRequest, "invalid type")
		return
	}

	if _, err := h.store.CreateBankRecord(&req); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "bank record created"})
}

// Match handles PUT /api/bank-records/{id}/match: toggles the manual
// pairing between a bank record and a voucher.
func (h *BankRecordsHandler) Match(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.MatchBankRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var err error
	if req.Matched {
		if req.MatchedVoucherID == "" {
			writeError(w, http.StatusBadRequest, "missing matched_voucher_id")
			return
		}
		err = h.store.MatchBankRecord(id, req.MatchedVoucherID)
	} else {
		err = h.store.UnmatchBankRecord(id)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "match status updated"})
}

// Delete handles DELETE /api/bank-records/{id}.
func (h *BankRecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteBankRecord(id); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "bank record deleted"})
}
