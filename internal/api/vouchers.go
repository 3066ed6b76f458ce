package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/models"
	"github.com/tallybook/tallybook/internal/store"
)

// VouchersHandler handles journal voucher endpoints.
type VouchersHandler struct {
	store *store.Store
}

// NewVouchersHandler creates a new VouchersHandler.
func NewVouchersHandler(s *store.Store) *VouchersHandler {
	return &VouchersHandler{store: s}
}

// List handles GET /api/vouchers.
func (h *VouchersHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.store.ListVouchers("")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vouchers)
}

// ListPending handles GET /api/vouchers/pending.
func (h *VouchersHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, models.VoucherStatusPending)
}

// ListPosted handles GET /api/vouchers/posted.
func (h *VouchersHandler) ListPosted(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, models.VoucherStatusPosted)
}

func (h *VouchersHandler) listByStatus(w http.ResponseWriter, status models.VoucherStatus) {
	vouchers, err := h.store.ListVouchers(status)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vouchers)
}

// Create handles POST /api/vouchers. The double-entry invariant is
// enforced here, before anything is persisted.
func (h *VouchersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoucherRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if req.VoucherNo == "" {
		writeError(w, http.StatusBadRequest, "missing voucher_no")
		return
	}
	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "missing date")
		return
	}

	if err := ledger.Validate(req.Lines); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.CreateVoucher(&req); err != nil {
		var dup *store.DuplicateKeyError
		if errors.As(err, &dup) {
			writeError(w, http.StatusBadRequest, "voucher number already exists, please use a different voucher number")
			return
		}
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatedResponse{ID: req.ID, Message: "voucher created"})
}

// UpdateStatus handles PUT /api/vouchers/{id}: the posting action.
func (h *VouchersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateVoucherStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.store.UpdateVoucherStatus(id, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "voucher status updated"})
}

// PostBatch handles POST /api/vouchers/post-batch: posts the listed
// vouchers in one transaction, all or nothing.
func (h *VouchersHandler) PostBatch(w http.ResponseWriter, r *http.Request) {
	var req models.PostBatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "missing ids")
		return
	}

	if err := h.store.PostVouchers(req.IDs); err != nil {
		writeStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "vouchers posted"})
}
