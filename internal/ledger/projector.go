package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallybook/tallybook/internal/models"
)

// Row is one general ledger line for a single account: the
// contribution of one posted voucher plus the running balance up to
// and including it.
type Row struct {
	Date        string          `json:"date"`
	VoucherNo   string          `json:"voucher_no"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Project derives the general ledger view of one account from the
// posted vouchers. Vouchers are ordered by date, ties broken by
// voucher number, so the running balance is deterministic. A voucher
// contributes a row only if at least one of its lines references the
// account's code; the row's debit and credit are the sums of those
// lines alone. The running balance is seeded from the account's
// recorded opening balance, with debits adding for debit-normal
// account types and credits adding for the rest.
//
// This is a read model: it is recomputed on demand from the posted
// set, never incrementally maintained.
func Project(account models.Account, posted []models.Voucher) []Row {
	ordered := make([]models.Voucher, len(posted))
	copy(ordered, posted)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].VoucherNo < ordered[j].VoucherNo
	})

	rows := []Row{}
	balance := account.Balance
	for _, v := range ordered {
		var debit, credit decimal.Decimal
		touched := false
		for _, line := range v.Lines {
			if line.Account != account.Code {
				continue
			}
			touched = true
			switch line.Side {
			case models.SideDebit:
				debit = debit.Add(line.Amount)
			case models.SideCredit:
				credit = credit.Add(line.Amount)
			}
		}
		if !touched {
			continue
		}

		signed := debit.Sub(credit)
		if !account.Type.DebitNormal() {
			signed = credit.Sub(debit)
		}
		balance = balance.Add(signed)

		rows = append(rows, Row{
			Date:        v.Date,
			VoucherNo:   v.VoucherNo,
			Description: v.Description,
			Debit:       debit,
			Credit:      credit,
			Balance:     balance,
		})
	}
	return rows
}
