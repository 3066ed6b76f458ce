package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tallybook-test.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testLine(account string, side models.EntrySide, amount string) models.EntryLine {
	return models.EntryLine{Account: account, Side: side, Amount: dec(amount)}
}

func createTestAccount(t *testing.T, s *Store, id, code string, accType models.AccountType, balance string) {
	t.Helper()
	_, err := s.CreateAccount(&models.CreateAccountRequest{
		ID:      id,
		Code:    code,
		Name:    "Account " + code,
		Type:    accType,
		Balance: dec(balance),
	})
	require.NoError(t, err)
}

func createTestVoucher(t *testing.T, s *Store, id, no, date string, lines ...models.EntryLine) {
	t.Helper()
	_, err := s.CreateVoucher(&models.CreateVoucherRequest{
		ID:          id,
		VoucherNo:   no,
		Date:        date,
		Description: "test voucher " + no,
		Lines:       lines,
	})
	require.NoError(t, err)
}
