package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(account string, side models.EntrySide, amount string) models.EntryLine {
	return models.EntryLine{Account: account, Side: side, Amount: dec(amount)}
}

func TestValidate_Balanced(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "1000"),
		line("1002", models.SideCredit, "1000"),
	}
	assert.NoError(t, Validate(lines))
}

func TestValidate_Unbalanced(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "900"),
		line("1002", models.SideCredit, "1000"),
	}
	err := Validate(lines)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Difference.Equal(dec("-100")), "difference = %s", verr.Difference)
}

func TestValidate_ZeroTotal(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "0"),
		line("1002", models.SideCredit, "0"),
	}
	err := Validate(lines)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than zero")
}

func TestValidate_TooFewLines(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "1000"),
	}
	assert.Error(t, Validate(lines))
	assert.Error(t, Validate(nil))
}

func TestValidate_NegativeAmount(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "-100"),
		line("1002", models.SideCredit, "-100"),
	}
	assert.Error(t, Validate(lines))
}

func TestValidate_MissingAccount(t *testing.T) {
	lines := []models.EntryLine{
		line("", models.SideDebit, "100"),
		line("1002", models.SideCredit, "100"),
	}
	assert.Error(t, Validate(lines))
}

func TestValidate_InvalidSide(t *testing.T) {
	lines := []models.EntryLine{
		{Account: "1001", Side: "both", Amount: dec("100")},
		line("1002", models.SideCredit, "100"),
	}
	assert.Error(t, Validate(lines))
}

func TestValidate_ExactEquality(t *testing.T) {
	// A one-cent mismatch is rejected at entry time even though the
	// posted-voucher audit would tolerate it.
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "100.00"),
		line("1002", models.SideCredit, "100.01"),
	}
	assert.Error(t, Validate(lines))
}

func TestValidate_MultiLine(t *testing.T) {
	lines := []models.EntryLine{
		line("5001", models.SideDebit, "700"),
		line("5002", models.SideDebit, "300"),
		line("1001", models.SideCredit, "1000"),
	}
	assert.NoError(t, Validate(lines))
}

func TestTotals(t *testing.T) {
	lines := []models.EntryLine{
		line("1001", models.SideDebit, "250.50"),
		line("1002", models.SideDebit, "49.50"),
		line("2001", models.SideCredit, "300"),
	}
	debit, credit := Totals(lines)
	assert.True(t, debit.Equal(dec("300")))
	assert.True(t, credit.Equal(dec("300")))
}
