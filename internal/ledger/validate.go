// Package ledger holds the double-entry bookkeeping core: voucher
// validation, the posted-voucher balance audit and the general ledger
// projection. Everything here is pure; persistence lives in
// internal/store.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallybook/tallybook/internal/models"
)

// ValidationError describes why a proposed set of entry lines was
// rejected. Difference is debit minus credit and is zero unless the
// rejection was for imbalance.
type ValidationError struct {
	Reason     string
	Difference decimal.Decimal
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Totals sums the debit and credit sides of a set of entry lines.
func Totals(lines []models.EntryLine) (debit, credit decimal.Decimal) {
	for _, line := range lines {
		switch line.Side {
		case models.SideDebit:
			debit = debit.Add(line.Amount)
		case models.SideCredit:
			credit = credit.Add(line.Amount)
		}
	}
	return debit, credit
}

// Validate enforces the double-entry invariant on a proposed voucher's
// entry lines: at least two lines, non-negative amounts, a known side
// and account code per line, and debits exactly equal to credits with
// a total greater than zero.
//
// Equality here is exact. The posted-voucher audit in InternalCheck
// deliberately uses a small tolerance instead; the strict check at
// entry time is what stops unbalanced vouchers being saved at all.
func Validate(lines []models.EntryLine) error {
	if len(lines) < 2 {
		return &ValidationError{Reason: "a voucher requires at least two entry lines"}
	}
	for i, line := range lines {
		if line.Account == "" {
			return &ValidationError{Reason: fmt.Sprintf("line %d is missing an account code", i+1)}
		}
		if !line.Side.Valid() {
			return &ValidationError{Reason: fmt.Sprintf("line %d has invalid side %q", i+1, line.Side)}
		}
		if line.Amount.IsNegative() {
			return &ValidationError{Reason: fmt.Sprintf("line %d has a negative amount", i+1)}
		}
	}

	debit, credit := Totals(lines)
	if !debit.Equal(credit) {
		diff := debit.Sub(credit)
		return &ValidationError{
			Reason:     fmt.Sprintf("voucher is not balanced: debits %s, credits %s", debit.StringFixed(2), credit.StringFixed(2)),
			Difference: diff,
		}
	}
	if !debit.IsPositive() {
		return &ValidationError{Reason: "voucher total must be greater than zero"}
	}
	return nil
}
