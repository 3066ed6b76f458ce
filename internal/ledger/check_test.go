package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func postedVoucher(no, date string, lines ...models.EntryLine) models.Voucher {
	return models.Voucher{
		ID:        "v-" + no,
		VoucherNo: no,
		Date:      date,
		Status:    models.VoucherStatusPosted,
		Lines:     lines,
	}
}

func TestInternalCheck_AllBalanced(t *testing.T) {
	vouchers := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "1000"),
			line("2001", models.SideCredit, "1000"),
		),
		postedVoucher("V002", "2024-01-11",
			line("5001", models.SideDebit, "250"),
			line("1001", models.SideCredit, "250"),
		),
	}

	result := InternalCheck(vouchers)
	assert.Equal(t, 2, result.TotalVouchers)
	assert.Equal(t, 2, result.BalancedVouchers)
	assert.Equal(t, 0, result.UnbalancedVouchers)
	assert.Empty(t, result.Issues)
}

func TestInternalCheck_FlagsCorruptedVoucher(t *testing.T) {
	vouchers := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "1000"),
			line("2001", models.SideCredit, "1000"),
		),
		// Stored lines that bypassed the entry-time validator.
		postedVoucher("V002", "2024-01-11",
			line("5001", models.SideDebit, "500"),
			line("1001", models.SideCredit, "480"),
		),
	}

	result := InternalCheck(vouchers)
	assert.Equal(t, 2, result.TotalVouchers)
	assert.Equal(t, 1, result.BalancedVouchers)
	assert.Equal(t, 1, result.UnbalancedVouchers)
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, "V002", issue.VoucherNo)
	assert.True(t, issue.DebitTotal.Equal(dec("500")))
	assert.True(t, issue.CreditTotal.Equal(dec("480")))
	assert.True(t, issue.Difference.Equal(dec("20")))
}

func TestInternalCheck_ToleratesOneCent(t *testing.T) {
	// Exactly 0.01 of drift is within the audit tolerance; anything
	// beyond it is not.
	within := postedVoucher("V001", "2024-01-10",
		line("1001", models.SideDebit, "100.01"),
		line("2001", models.SideCredit, "100.00"),
	)
	beyond := postedVoucher("V002", "2024-01-10",
		line("1001", models.SideDebit, "100.02"),
		line("2001", models.SideCredit, "100.00"),
	)

	result := InternalCheck([]models.Voucher{within, beyond})
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "V002", result.Issues[0].VoucherNo)
}

func TestInternalCheck_Empty(t *testing.T) {
	result := InternalCheck(nil)
	assert.Equal(t, 0, result.TotalVouchers)
	assert.NotNil(t, result.Issues)
}
