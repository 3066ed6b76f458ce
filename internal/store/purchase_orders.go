package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreatePurchaseOrder inserts a purchase order. The order number must
// be unique.
func (s *Store) CreatePurchaseOrder(req *models.CreatePurchaseOrderRequest) error {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	_, err := s.db.Exec(
		`INSERT INTO purchase_orders (id, order_no, date, supplier, items, amount, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.OrderNo, req.Date, req.Supplier, req.Items, req.Amount, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create purchase order: %w", duplicateKey(err, "order number"))
	}
	return nil
}

// UpdatePurchaseOrderStatus changes a purchase order's status.
func (s *Store) UpdatePurchaseOrderStatus(id, status string) error {
	return s.updateStatus("purchase_orders", id, status)
}

// ListPurchaseOrders retrieves all purchase orders, newest date first.
func (s *Store) ListPurchaseOrders() ([]models.PurchaseOrder, error) {
	rows, err := s.db.Query(
		`SELECT id, order_no, date, supplier, items, amount, status, created_at FROM purchase_orders ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		var o models.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.OrderNo, &o.Date, &o.Supplier, &o.Items, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// updateStatus changes the status column of one row in the given
// table; the table name is always a compile-time constant.
func (s *Store) updateStatus(table, id, status string) error {
	res, err := s.db.Exec(`UPDATE `+table+` SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", table, err)
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
