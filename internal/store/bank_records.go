package store

import (
	"database/sql"
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateBankRecord inserts a bank statement line, unmatched.
func (s *Store) CreateBankRecord(req *models.CreateBankRecordRequest) (*models.BankRecord, error) {
	_, err := s.db.Exec(
		`INSERT INTO bank_records (id, date, description, amount, type, matched) VALUES (?, ?, ?, ?, ?, 0)`,
		req.ID, req.Date, req.Description, req.Amount, string(req.Direction),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bank record: %w", err)
	}
	return s.GetBankRecord(req.ID)
}

// GetBankRecord retrieves a bank record by ID.
func (s *Store) GetBankRecord(id string) (*models.BankRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, date, description, amount, type, matched, matched_voucher_id, created_at
		 FROM bank_records WHERE id = ?`, id,
	)
	var r models.BankRecord
	var direction string
	var voucherID sql.NullString
	err := row.Scan(&r.ID, &r.Date, &r.Description, &r.Amount, &direction, &r.Matched, &voucherID, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank record: %w", err)
	}
	r.Direction = models.BankDirection(direction)
	r.MatchedVoucherID = voucherID.String
	return &r, nil
}

// ListBankRecords retrieves all bank records, newest date first.
func (s *Store) ListBankRecords() ([]models.BankRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, date, description, amount, type, matched, matched_voucher_id, created_at
		 FROM bank_records ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank records: %w", err)
	}
	defer rows.Close()

	records := []models.BankRecord{}
	for rows.Next() {
		var r models.BankRecord
		var direction string
		var voucherID sql.NullString
		if err := rows.Scan(&r.ID, &r.Date, &r.Description, &r.Amount, &direction, &r.Matched, &voucherID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank record: %w", err)
		}
		r.Direction = models.BankDirection(direction)
		r.MatchedVoucherID = voucherID.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// MatchBankRecord pairs a bank record with a voucher. The pairing is a
// manual human attestation: amounts and dates are not compared. A
// voucher holds at most one match, so any other bank record currently
// matched to the same voucher is unmatched in the same transaction.
func (s *Store) MatchBankRecord(id, voucherID string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`UPDATE bank_records SET matched = 0, matched_voucher_id = NULL WHERE matched_voucher_id = ?`,
			voucherID,
		); err != nil {
			return fmt.Errorf("failed to clear prior match: %w", err)
		}

		res, err := tx.Exec(
			`UPDATE bank_records SET matched = 1, matched_voucher_id = ? WHERE id = ?`,
			voucherID, id,
		)
		if err != nil {
			return fmt.Errorf("failed to match bank record: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UnmatchBankRecord clears a bank record's match state.
func (s *Store) UnmatchBankRecord(id string) error {
	res, err := s.db.Exec(
		`UPDATE bank_records SET matched = 0, matched_voucher_id = NULL WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to unmatch bank record: %w", err)
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

// DeleteBankRecord removes a bank record.
func (s *Store) DeleteBankRecord(id string) error {
	res, err := s.db.Exec(`DELETE FROM bank_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bank record: %w", err)
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
