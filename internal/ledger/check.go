package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tallybook/tallybook/internal/models"
)

// auditTolerance is the rounding slack allowed when re-checking stored
// vouchers. Creation-time validation is exact; this audit only flags
// drift larger than one cent so vouchers written before the validator
// existed, or by direct database edits, are reported without false
// positives from accumulated floating-point storage error.
var auditTolerance = decimal.New(1, -2)

// Issue describes one posted voucher whose stored lines no longer
// balance.
type Issue struct {
	VoucherNo   string          `json:"voucher_no"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Difference  decimal.Decimal `json:"difference"`
}

// CheckResult summarizes an internal reconciliation run over the
// posted-voucher set.
type CheckResult struct {
	TotalVouchers      int     `json:"totalVouchers"`
	BalancedVouchers   int     `json:"balancedVouchers"`
	UnbalancedVouchers int     `json:"unbalancedVouchers"`
	Issues             []Issue `json:"issues"`
}

// InternalCheck recomputes debit and credit totals from the stored
// lines of every voucher given (callers pass the posted set) and
// reports each voucher whose totals differ by more than the audit
// tolerance.
func InternalCheck(vouchers []models.Voucher) CheckResult {
	result := CheckResult{
		TotalVouchers: len(vouchers),
		Issues:        []Issue{},
	}
	for _, v := range vouchers {
		debit, credit := Totals(v.Lines)
		diff := debit.Sub(credit)
		if diff.Abs().GreaterThan(auditTolerance) {
			result.Issues = append(result.Issues, Issue{
				VoucherNo:   v.VoucherNo,
				Date:        v.Date,
				Description: v.Description,
				DebitTotal:  debit,
				CreditTotal: credit,
				Difference:  diff,
			})
		}
	}
	result.UnbalancedVouchers = len(result.Issues)
	result.BalancedVouchers = result.TotalVouchers - result.UnbalancedVouchers
	return result
}
