package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func assetAccount(code, opening string) models.Account {
	return models.Account{
		ID:      "a-" + code,
		Code:    code,
		Name:    "Account " + code,
		Type:    models.AccountTypeAsset,
		Balance: dec(opening),
	}
}

func TestProject_AssetSignConvention(t *testing.T) {
	account := assetAccount("1001", "0")
	posted := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "1000"),
			line("2001", models.SideCredit, "1000"),
		),
		postedVoucher("V002", "2024-01-15",
			line("5001", models.SideDebit, "300"),
			line("1001", models.SideCredit, "300"),
		),
	}

	rows := Project(account, posted)
	require.Len(t, rows, 2)

	assert.Equal(t, "V001", rows[0].VoucherNo)
	assert.True(t, rows[0].Debit.Equal(dec("1000")))
	assert.True(t, rows[0].Balance.Equal(dec("1000")))

	assert.Equal(t, "V002", rows[1].VoucherNo)
	assert.True(t, rows[1].Credit.Equal(dec("300")))
	assert.True(t, rows[1].Balance.Equal(dec("700")))
}

func TestProject_LiabilitySignConvention(t *testing.T) {
	account := models.Account{
		ID:      "a-2001",
		Code:    "2001",
		Type:    models.AccountTypeLiability,
		Balance: dec("0"),
	}
	posted := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "1000"),
			line("2001", models.SideCredit, "1000"),
		),
		postedVoucher("V002", "2024-01-20",
			line("2001", models.SideDebit, "400"),
			line("1001", models.SideCredit, "400"),
		),
	}

	rows := Project(account, posted)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(dec("1000")))
	assert.True(t, rows[1].Balance.Equal(dec("600")))
}

func TestProject_SeedsOpeningBalance(t *testing.T) {
	account := assetAccount("1001", "500")
	posted := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "100"),
			line("2001", models.SideCredit, "100"),
		),
	}

	rows := Project(account, posted)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(dec("600")))
}

func TestProject_SkipsUnrelatedVouchers(t *testing.T) {
	account := assetAccount("1001", "0")
	posted := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("5001", models.SideDebit, "100"),
			line("2001", models.SideCredit, "100"),
		),
	}

	rows := Project(account, posted)
	assert.Empty(t, rows)
}

func TestProject_OrdersByDateThenVoucherNo(t *testing.T) {
	account := assetAccount("1001", "0")
	posted := []models.Voucher{
		postedVoucher("V003", "2024-02-01",
			line("1001", models.SideDebit, "10"),
			line("2001", models.SideCredit, "10"),
		),
		postedVoucher("V002", "2024-01-10",
			line("1001", models.SideDebit, "20"),
			line("2001", models.SideCredit, "20"),
		),
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "30"),
			line("2001", models.SideCredit, "30"),
		),
	}

	rows := Project(account, posted)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"V001", "V002", "V003"}, []string{rows[0].VoucherNo, rows[1].VoucherNo, rows[2].VoucherNo})
	assert.True(t, rows[2].Balance.Equal(dec("60")))
}

func TestProject_SumsMultipleLinesPerVoucher(t *testing.T) {
	account := assetAccount("1001", "0")
	posted := []models.Voucher{
		postedVoucher("V001", "2024-01-10",
			line("1001", models.SideDebit, "70"),
			line("1001", models.SideDebit, "30"),
			line("1001", models.SideCredit, "25"),
			line("2001", models.SideCredit, "75"),
		),
	}

	rows := Project(account, posted)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Debit.Equal(dec("100")))
	assert.True(t, rows[0].Credit.Equal(dec("25")))
	assert.True(t, rows[0].Balance.Equal(dec("75")))
}
