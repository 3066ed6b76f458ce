package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateTaxRecord inserts a tax record.
func (s *Store) CreateTaxRecord(req *models.CreateTaxRecordRequest) error {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	_, err := s.db.Exec(
		`INSERT INTO tax_records (id, period, type, taxable_amount, tax_rate, tax_amount, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Period, req.Type, req.TaxableAmount, req.TaxRate, req.TaxAmount, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create tax record: %w", err)
	}
	return nil
}

// UpdateTaxRecordStatus changes a tax record's status.
func (s *Store) UpdateTaxRecordStatus(id, status string) error {
	return s.updateStatus("tax_records", id, status)
}

// ListTaxRecords retrieves all tax records, newest first.
func (s *Store) ListTaxRecords() ([]models.TaxRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, period, type, taxable_amount, tax_rate, tax_amount, status, created_at FROM tax_records ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax records: %w", err)
	}
	defer rows.Close()

	records := []models.TaxRecord{}
	for rows.Next() {
		var r models.TaxRecord
		if err := rows.Scan(&r.ID, &r.Period, &r.Type, &r.TaxableAmount, &r.TaxRate, &r.TaxAmount, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
