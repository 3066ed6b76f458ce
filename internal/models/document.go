package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status vocabularies for the business document workflows.
var (
	PurchaseOrderStatuses = []string{"pending", "approved", "completed", "cancelled"}
	SalesInvoiceStatuses  = []string{"draft", "sent", "paid", "overdue"}
	ExpenseStatuses       = []string{"pending", "approved", "rejected", "paid"}
	TaxRecordStatuses     = []string{"pending", "declared", "paid"}
)

// ValidStatus reports whether status is a member of the vocabulary.
func ValidStatus(vocabulary []string, status string) bool {
	for _, s := range vocabulary {
		if s == status {
			return true
		}
	}
	return false
}

// PurchaseOrder represents an order placed with a supplier.
type PurchaseOrder struct {
	ID        string          `json:"id"`
	OrderNo   string          `json:"order_no"`
	Date      string          `json:"date"`
	Supplier  string          `json:"supplier"`
	Items     string          `json:"items"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreatePurchaseOrderRequest represents the request to create a
// purchase order.
type CreatePurchaseOrderRequest struct {
	ID       string          `json:"id"`
	OrderNo  string          `json:"order_no"`
	Date     string          `json:"date"`
	Supplier string          `json:"supplier"`
	Items    string          `json:"items"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

// SalesInvoice represents an invoice issued to a customer.
type SalesInvoice struct {
	ID        string          `json:"id"`
	InvoiceNo string          `json:"invoice_no"`
	Date      string          `json:"date"`
	Customer  string          `json:"customer"`
	Items     string          `json:"items"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateSalesInvoiceRequest represents the request to create a sales
// invoice.
type CreateSalesInvoiceRequest struct {
	ID        string          `json:"id"`
	InvoiceNo string          `json:"invoice_no"`
	Date      string          `json:"date"`
	Customer  string          `json:"customer"`
	Items     string          `json:"items"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// Expense represents an employee expense reimbursement claim.
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Employee    string          `json:"employee"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateExpenseRequest represents the request to file an expense.
type CreateExpenseRequest struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Employee    string          `json:"employee"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
}

// TaxRecord represents one tax declaration for a period.
type TaxRecord struct {
	ID            string          `json:"id"`
	Period        string          `json:"period"`
	Type          string          `json:"type"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateTaxRecordRequest represents the request to create a tax record.
type CreateTaxRecordRequest struct {
	ID            string          `json:"id"`
	Period        string          `json:"period"`
	Type          string          `json:"type"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Status        string          `json:"status"`
}

// UpdateStatusRequest represents a bare status change for any of the
// business document workflows.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
