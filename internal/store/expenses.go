package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateExpense inserts an expense reimbursement claim.
func (s *Store) CreateExpense(req *models.CreateExpenseRequest) error {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	_, err := s.db.Exec(
		`INSERT INTO expenses (id, date, employee, category, description, amount, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Date, req.Employee, req.Category, req.Description, req.Amount, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// UpdateExpenseStatus changes an expense's status.
func (s *Store) UpdateExpenseStatus(id, status string) error {
	return s.updateStatus("expenses", id, status)
}

// ListExpenses retrieves all expenses, newest date first.
func (s *Store) ListExpenses() ([]models.Expense, error) {
	rows, err := s.db.Query(
		`SELECT id, date, employee, category, description, amount, status, created_at FROM expenses ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Employee, &e.Category, &e.Description, &e.Amount, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
