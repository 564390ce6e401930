package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// CreateContractRequest carries the form fields for a new contract. Dates are
// plain calendar dates submitted as YYYY-MM-DD.
type CreateContractRequest struct {
	StartDate        string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Status           string          `json:"status"`
	ResponsibleTaxID string          `json:"responsibleTaxID" binding:"omitempty,taxid"`
}

// UpdateContractRequest replaces the full contract record.
type UpdateContractRequest struct {
	StartDate        string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Status           string          `json:"status" binding:"required"`
	ResponsibleTaxID string          `json:"responsibleTaxID" binding:"omitempty,taxid"`
}

// AttachClientRequest identifies the client to link to a contract.
type AttachClientRequest struct {
	ClientID int64 `json:"clientID" binding:"required"`
}

// ContractResponse is the wire representation of a contract.
type ContractResponse struct {
	ContractID       int64           `json:"contractID"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	ResponsibleTaxID *string         `json:"responsibleTaxID,omitempty"`
}

// ListContractsResponse wraps the contract list endpoint payload.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ToContractResponse converts a domain contract to its response form.
func ToContractResponse(c *domain.Contract) ContractResponse {
	resp := ContractResponse{
		ContractID:       c.ContractID,
		StartDate:        c.StartDate.Format("2006-01-02"),
		Amount:           c.Amount,
		Status:           c.Status,
		ResponsibleTaxID: c.ResponsibleTaxID,
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format("2006-01-02")
	}
	return resp
}
