package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType labels a financial entry as money in or money out.
type EntryType string

const (
	EntryRevenue EntryType = "Revenue"
	EntryExpense EntryType = "Expense"
)

// StatusPending is the default status for payables and receivables and the
// filter used by the pending-accounts report.
const StatusPending = "Pending"

// FinancialEntry is a single revenue or expense record, optionally attached to
// a project (nulled when the project is deleted).
type FinancialEntry struct {
	EntryID     int64           `json:"entryID"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	EntryDate   time.Time       `json:"entryDate"` // Defaults to today at insert time
	EntryType   EntryType       `json:"entryType"`
	ProjectID   *int64          `json:"projectID,omitempty"`
}

// Payable is an outgoing account awaiting payment.
type Payable struct {
	PayableID   int64           `json:"payableID"`
	Beneficiary string          `json:"beneficiary,omitempty"`
	DueDate     time.Time       `json:"dueDate"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
}

// Receivable is an incoming account, optionally tied to a client.
type Receivable struct {
	ReceivableID int64           `json:"receivableID"`
	ReceivedAt   *time.Time      `json:"receivedAt,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	ClientID     *int64          `json:"clientID,omitempty"`
	Status       string          `json:"status"`
}
