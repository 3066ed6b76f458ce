package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook/tallybook/internal/models"
)

func createTestPeriod(t *testing.T, s *Store, id, key string) {
	t.Helper()
	require.NoError(t, s.CreatePeriod(&models.CreatePeriodRequest{
		ID:     id,
		Period: key,
		Type:   models.PeriodMonth,
	}))
}

func TestClosePeriod_RefusedWithPendingVouchers(t *testing.T) {
	s := newTestStore(t)
	createTestPeriod(t, s, "p1", "2024-01")
	createTestVoucher(t, s, "v1", "V001", "2024-01-10",
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	)

	err := s.ClosePeriod("p1", "admin")
	assert.ErrorIs(t, err, ErrPeriodCheckFailed)

	// After posting, the close succeeds.
	require.NoError(t, s.UpdateVoucherStatus("v1", models.VoucherStatusPosted))
	require.NoError(t, s.ClosePeriod("p1", "admin"))

	periods, err := s.ListPeriods()
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, models.PeriodClosed, periods[0].Status)
	assert.Equal(t, "admin", periods[0].ClosedBy)
	assert.NotEmpty(t, periods[0].ClosedDate)
}

func TestClosePeriod_IgnoresOtherPeriods(t *testing.T) {
	s := newTestStore(t)
	createTestPeriod(t, s, "p1", "2024-01")
	// Pending voucher dated outside the period does not block the close.
	createTestVoucher(t, s, "v1", "V001", "2024-02-05",
		testLine("1001", models.SideDebit, "100"),
		testLine("2001", models.SideCredit, "100"),
	)

	require.NoError(t, s.ClosePeriod("p1", "admin"))
}

func TestClosePeriod_AlreadyClosed(t *testing.T) {
	s := newTestStore(t)
	createTestPeriod(t, s, "p1", "2024-01")
	require.NoError(t, s.ClosePeriod("p1", "admin"))

	assert.ErrorIs(t, s.ClosePeriod("p1", "admin"), ErrPeriodNotOpen)
}

func TestReopenPeriod(t *testing.T) {
	s := newTestStore(t)
	createTestPeriod(t, s, "p1", "2024-01")

	// Reopening an open period is rejected.
	assert.ErrorIs(t, s.ReopenPeriod("p1"), ErrPeriodNotOpen)

	require.NoError(t, s.ClosePeriod("p1", "admin"))
	require.NoError(t, s.ReopenPeriod("p1"))

	periods, err := s.ListPeriods()
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, models.PeriodOpen, periods[0].Status)
	assert.Empty(t, periods[0].ClosedBy)
	assert.Empty(t, periods[0].ClosedDate)
}

func TestCreatePeriod_Duplicate(t *testing.T) {
	s := newTestStore(t)
	createTestPeriod(t, s, "p1", "2024-01")

	err := s.CreatePeriod(&models.CreatePeriodRequest{
		ID:     "p2",
		Period: "2024-01",
		Type:   models.PeriodMonth,
	})
	var dup *DuplicateKeyError
	assert.ErrorAs(t, err, &dup)
}
