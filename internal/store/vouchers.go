package store

import (
	"database/sql"
	"fmt"

	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/models"
)

// CreateVoucher persists a voucher and its entry lines in one
// transaction. Callers are expected to have run ledger.Validate first;
// the stored amount is the total of the debit side. A duplicate
// voucher number fails with DuplicateKeyError.
func (s *Store) CreateVoucher(req *models.CreateVoucherRequest) (*models.Voucher, error) {
	debit, _ := ledger.Totals(req.Lines)

	err := s.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO vouchers (id, voucher_no, date, description, amount, status) VALUES (?, ?, ?, ?, ?, ?)`,
			req.ID, req.VoucherNo, req.Date, req.Description, debit, string(models.VoucherStatusPending),
		)
		if err != nil {
			return duplicateKey(err, "voucher number")
		}

		for i, line := range req.Lines {
			_, err := tx.Exec(
				`INSERT INTO voucher_lines (voucher_id, line_no, account_code, side, amount, memo) VALUES (?, ?, ?, ?, ?, ?)`,
				req.ID, i+1, line.Account, string(line.Side), line.Amount, line.Memo,
			)
			if err != nil {
				return fmt.Errorf("failed to insert line %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	return s.GetVoucher(req.ID)
}

// GetVoucher retrieves a voucher with its lines.
func (s *Store) GetVoucher(id string) (*models.Voucher, error) {
	row := s.db.QueryRow(
		`SELECT id, voucher_no, date, description, amount, status, created_at FROM vouchers WHERE id = ?`, id,
	)
	var v models.Voucher
	var status string
	err := row.Scan(&v.ID, &v.VoucherNo, &v.Date, &v.Description, &v.Amount, &status, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan voucher: %w", err)
	}
	v.Status = models.VoucherStatus(status)

	lines, err := s.loadLines([]string{v.ID})
	if err != nil {
		return nil, err
	}
	v.Lines = lines[v.ID]
	if v.Lines == nil {
		v.Lines = []models.EntryLine{}
	}
	return &v, nil
}

// UpdateVoucherStatus overwrites a voucher's status. Posting performs
// no re-validation: the balance invariant was enforced at creation
// time and lines are immutable afterwards.
func (s *Store) UpdateVoucherStatus(id string, status models.VoucherStatus) error {
	res, err := s.db.Exec(`UPDATE vouchers SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update voucher status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PostVouchers marks every listed voucher as posted inside a single
// transaction: either all of them post or none do. An unknown ID
// fails the whole batch with ErrNotFound.
func (s *Store) PostVouchers(ids []string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		for _, id := range ids {
			res, err := tx.Exec(
				`UPDATE vouchers SET status = ? WHERE id = ?`,
				string(models.VoucherStatusPosted), id,
			)
			if err != nil {
				return fmt.Errorf("failed to post voucher %s: %w", id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("voucher %s: %w", id, ErrNotFound)
			}
		}
		return nil
	})
}

// ListVouchers retrieves vouchers with their lines, newest date first.
// An empty status lists everything.
func (s *Store) ListVouchers(status models.VoucherStatus) ([]models.Voucher, error) {
	query := `SELECT id, voucher_no, date, description, amount, status, created_at FROM vouchers`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY date DESC, voucher_no DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := []models.Voucher{}
	ids := []string{}
	for rows.Next() {
		var v models.Voucher
		var st string
		if err := rows.Scan(&v.ID, &v.VoucherNo, &v.Date, &v.Description, &v.Amount, &st, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voucher: %w", err)
		}
		v.Status = models.VoucherStatus(st)
		v.Lines = []models.EntryLine{}
		vouchers = append(vouchers, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := s.loadLines(ids)
	if err != nil {
		return nil, err
	}
	for i := range vouchers {
		if l, ok := lines[vouchers[i].ID]; ok {
			vouchers[i].Lines = l
		}
	}
	return vouchers, nil
}

// loadLines fetches the entry lines for the given voucher IDs, keyed
// by voucher ID and ordered by line number.
func (s *Store) loadLines(ids []string) (map[string][]models.EntryLine, error) {
	lines := make(map[string][]models.EntryLine, len(ids))
	if len(ids) == 0 {
		return lines, nil
	}

	placeholders := ""
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args[i] = id
	}

	rows, err := s.db.Query(
		`SELECT voucher_id, account_code, side, amount, memo FROM voucher_lines
		 WHERE voucher_id IN (`+placeholders+`) ORDER BY voucher_id, line_no`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load voucher lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var voucherID, side string
		var line models.EntryLine
		var memo sql.NullString
		if err := rows.Scan(&voucherID, &line.Account, &side, &line.Amount, &memo); err != nil {
			return nil, fmt.Errorf("failed to scan voucher line: %w", err)
		}
		line.Side = models.EntrySide(side)
		line.Memo = memo.String
		lines[voucherID] = append(lines[voucherID], line)
	}
	return lines, rows.Err()
}
