package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func TestCreateVoucher_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	createTestVoucher(t, s, "v1", "V001", "2024-01-10",
		testLine("1001", models.SideDebit, "1000"),
		testLine("2001", models.SideCredit, "1000"),
	)

	v, err := s.GetVoucher("v1")
	require.NoError(t, err)
	assert.Equal(t, "V001", v.VoucherNo)
	assert.Equal(t, models.VoucherStatusPending, v.Status)
	assert.True(t, v.Amount.Equal(dec("1000")))
	require.Len(t, v.Lines, 2)
	assert.Equal(t, "1001", v.Lines[0].Account)
	assert.Equal(t, models.SideDebit, v.Lines[0].Side)
	assert.True(t, v.Lines[0].Amount.Equal(dec("1000")))
	assert.Equal(t, "2001", v.Lines[1].Account)
}

func TestCreateVoucher_DuplicateNumber(t *testing.T) {
	s := newTestStore(t)
	lines := []models.EntryLine{
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	}
	createTestVoucher(t, s, "v1", "V001", "2024-01-10", lines...)

	_, err := s.CreateVoucher(&models.CreateVoucherRequest{
		ID:        "v2",
		VoucherNo: "V001",
		Date:      "2024-01-11",
		Lines:     lines,
	})
	require.Error(t, err)

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "voucher number", dup.Key)

	// The failed insert left no partial state behind.
	vouchers, err := s.ListVouchers("")
	require.NoError(t, err)
	assert.Len(t, vouchers, 1)
}

func TestUpdateVoucherStatus_Posting(t *testing.T) {
	s := newTestStore(t)
	createTestVoucher(t, s, "v1", "V001", "2024-01-10",
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	)

	require.NoError(t, s.UpdateVoucherStatus("v1", models.VoucherStatusPosted))

	pending, err := s.ListVouchers(models.VoucherStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	posted, err := s.ListVouchers(models.VoucherStatusPosted)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.Equal(t, "V001", posted[0].VoucherNo)
	require.Len(t, posted[0].Lines, 2)

	// Posting an already-posted voucher leaves it posted.
	require.NoError(t, s.UpdateVoucherStatus("v1", models.VoucherStatusPosted))
	posted, err = s.ListVouchers(models.VoucherStatusPosted)
	require.NoError(t, err)
	assert.Len(t, posted, 1)
}

func TestUpdateVoucherStatus_NotFound(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.UpdateVoucherStatus("missing", models.VoucherStatusPosted), ErrNotFound)
}

func TestPostVouchers_Batch(t *testing.T) {
	s := newTestStore(t)
	lines := func() []models.EntryLine {
		return []models.EntryLine{
			testLine("1001", models.SideDebit, "100"),
			testLine("2001", models.SideCredit, "100"),
		}
	}
	createTestVoucher(t, s, "v1", "V001", "2024-01-10", lines()...)
	createTestVoucher(t, s, "v2", "V002", "2024-01-11", lines()...)

	require.NoError(t, s.PostVouchers([]string{"v1", "v2"}))

	posted, err := s.ListVouchers(models.VoucherStatusPosted)
	require.NoError(t, err)
	assert.Len(t, posted, 2)
}

func TestPostVouchers_AllOrNothing(t *testing.T) {
	s := newTestStore(t)
	createTestVoucher(t, s, "v1", "V001", "2024-01-10",
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	)

	err := s.PostVouchers([]string{"v1", "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	// The whole batch rolled back: v1 is still pending.
	v, err := s.GetVoucher("v1")
	require.NoError(t, err)
	assert.Equal(t, models.VoucherStatusPending, v.Status)
}

func TestListVouchers_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	lines := func() []models.EntryLine {
		return []models.EntryLine{
			testLine("1001", models.SideDebit, "100"),
			testLine("2001", models.SideCredit, "100"),
		}
	}
	createTestVoucher(t, s, "v1", "V001", "2024-01-10", lines()...)
	createTestVoucher(t, s, "v2", "V002", "2024-02-01", lines()...)

	vouchers, err := s.ListVouchers("")
	require.NoError(t, err)
	require.Len(t, vouchers, 2)
	assert.Equal(t, "V002", vouchers[0].VoucherNo)
	assert.Equal(t, "V001", vouchers[1].VoucherNo)
}

func TestDeleteAccountCascade_LinesBelongToVoucher(t *testing.T) {
	s := newTestStore(t)
	createTestVoucher(t, s, "v1", "V001", "2024-01-10",
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	)

	// Deleting the voucher row cascades to its lines.
	_, err := s.db.Exec(`DELETE FROM vouchers WHERE id = 'v1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM voucher_lines`).Scan(&n))
	assert.Equal(t, 0, n)
}
