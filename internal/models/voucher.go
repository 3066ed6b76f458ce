package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus is the lifecycle state of a voucher.
type VoucherStatus string

const (
	VoucherStatusPending VoucherStatus = "pending"
	VoucherStatusPosted  VoucherStatus = "posted"
)

// Valid reports whether s is a known voucher status.
func (s VoucherStatus) Valid() bool {
	return s == VoucherStatusPending || s == VoucherStatusPosted
}

// EntrySide is the debit-or-credit side of an entry line.
type EntrySide string

const (
	SideDebit  EntrySide = "debit"
	SideCredit EntrySide = "credit"
)

// Valid reports whether s is a known entry side.
func (s EntrySide) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// EntryLine is one debit-or-credit leg of a voucher. Lines have no
// lifecycle of their own; they are owned by their parent voucher.
type EntryLine struct {
	Account string          `json:"account"`
	Side    EntrySide       `json:"side"`
	Amount  decimal.Decimal `json:"amount"`
	Memo    string          `json:"memo,omitempty"`
}

// Voucher is one atomic double-entry accounting transaction.
type Voucher struct {
	ID          string          `json:"id"`
	VoucherNo   string          `json:"voucher_no"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // total of the debit side
	Status      VoucherStatus   `json:"status"`
	Lines       []EntryLine     `json:"lines"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateVoucherRequest represents the request to create a voucher.
type CreateVoucherRequest struct {
	ID          string      `json:"id"`
	VoucherNo   string      `json:"voucher_no"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Lines       []EntryLine `json:"lines"`
}

// UpdateVoucherStatusRequest represents the request to change a
// voucher's status, used for posting.
type UpdateVoucherStatusRequest struct {
	Status VoucherStatus `json:"status"`
}

// PostBatchRequest represents the request to post several vouchers at
// once.
type PostBatchRequest struct {
	IDs []string `json:"ids"`
}
