package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateEmployee inserts an employee.
func (s *Store) CreateEmployee(req *models.EmployeeRequest) error {
	_, err := s.db.Exec(
		`INSERT INTO employees (id, name, position, department, phone, email, salary, join_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Name, req.Position, req.Department, req.Phone, req.Email, req.Salary, req.JoinDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// UpdateEmployee updates an employee.
func (s *Store) UpdateEmployee(id string, req *models.EmployeeRequest) error {
	res, err := s.db.Exec(
		`UPDATE employees SET name = ?, position = ?, department = ?, phone = ?, email = ?, salary = ?, join_date = ? WHERE id = ?`,
		req.Name, req.Position, req.Department, req.Phone, req.Email, req.Salary, req.JoinDate, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
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

// DeleteEmployee removes an employee.
func (s *Store) DeleteEmployee(id string) error {
	res, err := s.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
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

// ListEmployees retrieves all employees, newest first.
func (s *Store) ListEmployees() ([]models.Employee, error) {
	rows, err := s.db.Query(
		`SELECT id, name, position, department, phone, email, salary, join_date, created_at FROM employees ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Department, &e.Phone, &e.Email, &e.Salary, &e.JoinDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
