package store

import (
	"database/sql"
	"fmt"

	"github.com/tallybook/tallybook/internal/models"
)

// CreateAccount inserts a new account. The account code must be unique
// across the chart of accounts.
func (s *Store) CreateAccount(req *models.CreateAccountRequest) (*models.Account, error) {
	_, err := s.db.Exec(
		`INSERT INTO accounts (id, code, name, type, balance) VALUES (?, ?, ?, ?, ?)`,
		req.ID, req.Code, req.Name, string(req.Type), req.Balance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", duplicateKey(err, "account code"))
	}
	return s.GetAccount(req.ID)
}

// GetAccount retrieves an account by ID.
func (s *Store) GetAccount(id string) (*models.Account, error) {
	row := s.db.QueryRow(
		`SELECT id, code, name, type, balance, created_at FROM accounts WHERE id = ?`, id,
	)
	return scanAccount(row)
}

// UpdateAccount updates every field of an account except its ID. A
// code change that collides with a different account fails with
// DuplicateKeyError.
func (s *Store) UpdateAccount(id string, req *models.UpdateAccountRequest) error {
	res, err := s.db.Exec(
		`UPDATE accounts SET code = ?, name = ?, type = ?, balance = ? WHERE id = ?`,
		req.Code, req.Name, string(req.Type), req.Balance, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", duplicateKey(err, "account code"))
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

// DeleteAccount removes an account. Deletion is refused while any
// voucher line still references the account's code, since removing it
// would silently corrupt the ledger projection for that code.
func (s *Store) DeleteAccount(id string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		var code string
		err := tx.QueryRow(`SELECT code FROM accounts WHERE id = ?`, id).Scan(&code)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load account: %w", err)
		}

		var refs int
		if err := tx.QueryRow(
			`SELECT COUNT(*) FROM voucher_lines WHERE account_code = ?`, code,
		).Scan(&refs); err != nil {
			return fmt.Errorf("failed to count references: %w", err)
		}
		if refs > 0 {
			return fmt.Errorf("%d voucher lines reference code %s: %w", refs, code, ErrAccountReferenced)
		}

		if _, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
}

// ListAccounts retrieves all accounts ordered by code ascending, the
// stable order used for display and journal-entry dropdowns.
func (s *Store) ListAccounts() ([]models.Account, error) {
	rows, err := s.db.Query(
		`SELECT id, code, name, type, balance, created_at FROM accounts ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		var accType string
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &accType, &a.Balance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		a.Type = models.AccountType(accType)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	var accType string
	err := row.Scan(&a.ID, &a.Code, &a.Name, &accType, &a.Balance, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	a.Type = models.AccountType(accType)
	return &a, nil
}
