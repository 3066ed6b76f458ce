package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankDirection is the direction of a bank transaction.
type BankDirection string

const (
	BankIncome  BankDirection = "income"
	BankExpense BankDirection = "expense"
)

// Valid reports whether d is a known direction.
func (d BankDirection) Valid() bool {
	return d == BankIncome || d == BankExpense
}

// BankRecord is an independently entered bank statement line used only
// for reconciliation against posted vouchers.
type BankRecord struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"` // YYYY-MM-DD
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Direction        BankDirection   `json:"type"`
	Matched          bool            `json:"matched"`
	MatchedVoucherID string          `json:"matched_voucher_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateBankRecordRequest represents the request to record a bank
// transaction.
type CreateBankRecordRequest struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   BankDirection   `json:"type"`
}

// MatchBankRecordRequest represents the request to toggle a bank
// record's match state.
type MatchBankRecordRequest struct {
	Matched          bool   `json:"matched"`
	MatchedVoucherID string `json:"matched_voucher_id"`
}
