package models

import "time"

// PeriodStatus is the open/closed state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// PeriodType distinguishes month-end from year-end periods.
type PeriodType string

const (
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// Valid reports whether t is a known period type.
func (t PeriodType) Valid() bool {
	return t == PeriodMonth || t == PeriodYear
}

// Period represents one accounting period. The period key is a date
// prefix: YYYY-MM for months, YYYY for years. Voucher dates are matched
// against it when closing.
type Period struct {
	ID         string       `json:"id"`
	Period     string       `json:"period"`
	Type       PeriodType   `json:"type"`
	Status     PeriodStatus `json:"status"`
	ClosedDate string       `json:"closed_date,omitempty"`
	ClosedBy   string       `json:"closed_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// CreatePeriodRequest represents the request to open a new period.
type CreatePeriodRequest struct {
	ID     string     `json:"id"`
	Period string     `json:"period"`
	Type   PeriodType `json:"type"`
}

// ClosePeriodRequest represents the request to close a period.
type ClosePeriodRequest struct {
	ClosedBy string `json:"closed_by"`
}
