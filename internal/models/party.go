package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is a customer or supplier. Both share the same shape and are
// kept in separate tables.
type Party struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// PartyRequest represents the request to create or update a customer
// or supplier.
type PartyRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Contact string          `json:"contact"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// Employee represents a member of staff, referenced by expense
// reimbursements.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EmployeeRequest represents the request to create or update an
// employee.
type EmployeeRequest struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date"`
}
