package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateSalesInvoice inserts a sales invoice. The invoice number must
// be unique.
func (s *Store) CreateSalesInvoice(req *models.CreateSalesInvoiceRequest) error {
	status := req.Status
	if status == "" {
		status = "draft"
	}
	_, err := s.db.Exec(
		`INSERT INTO sales_invoices (id, invoice_no, date, customer, items, amount, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.InvoiceNo, req.Date, req.Customer, req.Items, req.Amount, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create sales invoice: %w", duplicateKey(err, "invoice number"))
	}
	return nil
}

// UpdateSalesInvoiceStatus changes a sales invoice's status.
func (s *Store) UpdateSalesInvoiceStatus(id, status string) error {
	return s.updateStatus("sales_invoices", id, status)
}

// ListSalesInvoices retrieves all sales invoices, newest date first.
func (s *Store) ListSalesInvoices() ([]models.SalesInvoice, error) {
	rows, err := s.db.Query(
		`SELECT id, invoice_no, date, customer, items, amount, status, created_at FROM sales_invoices ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.SalesInvoice{}
	for rows.Next() {
		var inv models.SalesInvoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNo, &inv.Date, &inv.Customer, &inv.Items, &inv.Amount, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sales invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
