package store

import (
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// Customers and suppliers share the same shape; the unexported helpers
// below take the table name, which is always one of the two constants.

const (
	tableCustomers = "customers"
	tableSuppliers = "suppliers"
)

// CreateCustomer inserts a customer.
func (s *Store) CreateCustomer(req *models.PartyRequest) error {
	return s.createParty(tableCustomers, req)
}

// UpdateCustomer updates a customer.
func (s *Store) UpdateCustomer(id string, req *models.PartyRequest) error {
	return s.updateParty(tableCustomers, id, req)
}

// DeleteCustomer removes a customer.
func (s *Store) DeleteCustomer(id string) error {
	return s.deleteParty(tableCustomers, id)
}

// ListCustomers retrieves all customers, newest first.
func (s *Store) ListCustomers() ([]models.Party, error) {
	return s.listParties(tableCustomers)
}

// CreateSupplier inserts a supplier.
func (s *Store) CreateSupplier(req *models.PartyRequest) error {
	return s.createParty(tableSuppliers, req)
}

// UpdateSupplier updates a supplier.
func (s *Store) UpdateSupplier(id string, req *models.PartyRequest) error {
	return s.updateParty(tableSuppliers, id, req)
}

// DeleteSupplier removes a supplier.
func (s *Store) DeleteSupplier(id string) error {
	return s.deleteParty(tableSuppliers, id)
}

// ListSuppliers retrieves all suppliers, newest first.
func (s *Store) ListSuppliers() ([]models.Party, error) {
	return s.listParties(tableSuppliers)
}

func (s *Store) createParty(table string, req *models.PartyRequest) error {
	_, err := s.db.Exec(
		`INSERT INTO `+table+` (id, name, contact, phone, email, address, balance) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Name, req.Contact, req.Phone, req.Email, req.Address, req.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to create %s record: %w", table, err)
	}
	return nil
}

func (s *Store) updateParty(table, id string, req *models.PartyRequest) error {
	res, err := s.db.Exec(
		`UPDATE `+table+` SET name = ?, contact = ?, phone = ?, email = ?, address = ?, balance = ? WHERE id = ?`,
		req.Name, req.Contact, req.Phone, req.Email, req.Address, req.Balance, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s record: %w", table, err)
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

func (s *Store) deleteParty(table, id string) error {
	res, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s record: %w", table, err)
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

func (s *Store) listParties(table string) ([]models.Party, error) {
	rows, err := s.db.Query(
		`SELECT id, name, contact, phone, email, address, balance, created_at FROM ` + table + ` ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		var p models.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.Contact, &p.Phone, &p.Email, &p.Address, &p.Balance, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", table, err)
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}
