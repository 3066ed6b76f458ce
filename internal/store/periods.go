package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tallybook/tallybook/internal/models"
)

// ErrPeriodNotOpen is returned when closing a period that is already
// closed, or reopening one that is already open.
var ErrPeriodNotOpen = fmt.Errorf("period is not in the expected state")

// CreatePeriod opens a new accounting period. The period key must be
// unique.
func (s *Store) CreatePeriod(req *models.CreatePeriodRequest) error {
	_, err := s.db.Exec(
		`INSERT INTO periods (id, period, type, status) VALUES (?, ?, ?, ?)`,
		req.ID, req.Period, string(req.Type), string(models.PeriodOpen),
	)
	if err != nil {
		return fmt.Errorf("failed to create period: %w", duplicateKey(err, "period"))
	}
	return nil
}

// ListPeriods retrieves all periods, newest key first.
func (s *Store) ListPeriods() ([]models.Period, error) {
	rows, err := s.db.Query(
		`SELECT id, period, type, status, closed_date, closed_by, created_at FROM periods ORDER BY period DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	periods := []models.Period{}
	for rows.Next() {
		var p models.Period
		var ptype, status string
		var closedDate, closedBy sql.NullString
		if err := rows.Scan(&p.ID, &p.Period, &ptype, &status, &closedDate, &closedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		p.Type = models.PeriodType(ptype)
		p.Status = models.PeriodStatus(status)
		p.ClosedDate = closedDate.String
		p.ClosedBy = closedBy.String
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// ClosePeriod closes an open period. Closing is refused while pending
// vouchers dated inside the period remain: post or delete them first.
func (s *Store) ClosePeriod(id, closedBy string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		var key, status string
		err := tx.QueryRow(`SELECT period, status FROM periods WHERE id = ?`, id).Scan(&key, &status)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load period: %w", err)
		}
		if models.PeriodStatus(status) != models.PeriodOpen {
			return fmt.Errorf("period %s is already closed: %w", key, ErrPeriodNotOpen)
		}

		var pending int
		err = tx.QueryRow(
			`SELECT COUNT(*) FROM vouchers WHERE status = ? AND date LIKE ? || '%'`,
			string(models.VoucherStatusPending), key,
		).Scan(&pending)
		if err != nil {
			return fmt.Errorf("failed to count pending vouchers: %w", err)
		}
		if pending > 0 {
			return fmt.Errorf("%d pending vouchers dated in %s: %w", pending, key, ErrPeriodCheckFailed)
		}

		_, err = tx.Exec(
			`UPDATE periods SET status = ?, closed_date = ?, closed_by = ? WHERE id = ?`,
			string(models.PeriodClosed), time.Now().Format("2006-01-02"), closedBy, id,
		)
		if err != nil {
			return fmt.Errorf("failed to close period: %w", err)
		}
		return nil
	})
}

// ReopenPeriod reopens a closed period so data in it can be corrected.
func (s *Store) ReopenPeriod(id string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRow(`SELECT status FROM periods WHERE id = ?`, id).Scan(&status)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load period: %w", err)
		}
		if models.PeriodStatus(status) != models.PeriodClosed {
			return fmt.Errorf("period is already open: %w", ErrPeriodNotOpen)
		}

		_, err = tx.Exec(
			`UPDATE periods SET status = ?, closed_date = NULL, closed_by = NULL WHERE id = ?`,
			string(models.PeriodOpen), id,
		)
		if err != nil {
			return fmt.Errorf("failed to reopen period: %w", err)
		}
		return nil
	})
}
