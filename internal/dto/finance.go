package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// CreateEntryRequest carries the form fields for a new financial entry. The
// entry date is assigned by the database.
type CreateEntryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EntryType   string          `json:"entryType" binding:"required,oneof=Revenue Expense"`
	ProjectID   *int64          `json:"projectID"`
}

// UpdateEntryRequest replaces the full financial entry record.
type UpdateEntryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EntryType   string          `json:"entryType" binding:"required,oneof=Revenue Expense"`
	ProjectID   *int64          `json:"projectID"`
}

// EntryResponse is the wire representation of a financial entry.
type EntryResponse struct {
	EntryID     int64           `json:"entryID"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	EntryDate   string          `json:"entryDate"`
	EntryType   string          `json:"entryType"`
	ProjectID   *int64          `json:"projectID,omitempty"`
}

// ListEntriesResponse wraps the financial entry list endpoint payload.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain financial entry to its response form.
func ToEntryResponse(e *domain.FinancialEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		Description: e.Description,
		Amount:      e.Amount,
		EntryDate:   e.EntryDate.Format("2006-01-02"),
		EntryType:   string(e.EntryType),
		ProjectID:   e.ProjectID,
	}
}

// CreatePayableRequest carries the form fields for a new payable.
type CreatePayableRequest struct {
	Beneficiary string          `json:"beneficiary"`
	DueDate     string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// UpdatePayableRequest replaces the full payable record.
type UpdatePayableRequest struct {
	Beneficiary string          `json:"beneficiary"`
	DueDate     string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" binding:"required"`
}

// PayableResponse is the wire representation of a payable.
type PayableResponse struct {
	PayableID   int64           `json:"payableID"`
	Beneficiary string          `json:"beneficiary,omitempty"`
	DueDate     string          `json:"dueDate"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
}

// ListPayablesResponse wraps the payable list endpoint payload.
type ListPayablesResponse struct {
	Payables []PayableResponse `json:"payables"`
}

// ToPayableResponse converts a domain payable to its response form.
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:   p.PayableID,
		Beneficiary: p.Beneficiary,
		DueDate:     p.DueDate.Format("2006-01-02"),
		Amount:      p.Amount,
		Description: p.Description,
		Status:      p.Status,
	}
}

// CreateReceivableRequest carries the form fields for a new receivable.
type CreateReceivableRequest struct {
	ReceivedAt  string          `json:"receivedAt" binding:"omitempty,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	ClientID    *int64          `json:"clientID"`
	Status      string          `json:"status"`
}

// UpdateReceivableRequest replaces the full receivable record.
type UpdateReceivableRequest struct {
	ReceivedAt  string          `json:"receivedAt" binding:"omitempty,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	ClientID    *int64          `json:"clientID"`
	Status      string          `json:"status" binding:"required"`
}

// ReceivableResponse is the wire representation of a receivable.
type ReceivableResponse struct {
	ReceivableID int64           `json:"receivableID"`
	ReceivedAt   string          `json:"receivedAt,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	ClientID     *int64          `json:"clientID,omitempty"`
	Status       string          `json:"status"`
}

// ListReceivablesResponse wraps the receivable list endpoint payload.
type ListReceivablesResponse struct {
	Receivables []ReceivableResponse `json:"receivables"`
}

// ToReceivableResponse converts a domain receivable to its response form.
func ToReceivableResponse(r *domain.Receivable) ReceivableResponse {
	resp := ReceivableResponse{
		ReceivableID: r.ReceivableID,
		Amount:       r.Amount,
		Description:  r.Description,
		ClientID:     r.ClientID,
		Status:       r.Status,
	}
	if r.ReceivedAt != nil {
		resp.ReceivedAt = r.ReceivedAt.Format("2006-01-02")
	}
	return resp
}
