// Package store provides SQLite persistence for the accounting data.
// Uniqueness of natural business keys (account code, voucher number,
// order number, invoice number) is enforced by unique indexes and is
// the sole serialization point between concurrent writers.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrAccountReferenced is returned when deleting an account that
	// voucher lines still reference.
	ErrAccountReferenced = errors.New("account is referenced by voucher lines")

	// ErrPeriodCheckFailed is returned when closing a period that
	// still has pending vouchers dated inside it.
	ErrPeriodCheckFailed = errors.New("period has pending vouchers")
)

// DuplicateKeyError is returned when an insert or update collides with
// a unique business key. It is a user-correctable condition, distinct
// from other storage failures: callers should prompt for a different
// key rather than retry.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Key)
}

// duplicateKey translates a unique-constraint violation into a
// DuplicateKeyError, passing any other error through.
func duplicateKey(err error, key string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return &DuplicateKeyError{Key: key}
	}
	return err
}

// Store manages the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the SQLite database at dbPath, creating the parent
// directory and the schema as needed. Foreign keys and WAL mode are
// enabled.
func Open(dbPath string) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Transaction executes fn within a transaction. If fn returns an
// error the transaction is rolled back, otherwise it is committed.
func (s *Store) Transaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
