package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// CreateLeadRequest carries the form fields for a new lead.
type CreateLeadRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Origin       string `json:"origin"`
	FunnelStatus string `json:"funnelStatus"`
	TaxID        string `json:"taxID" binding:"omitempty,taxid"`
}

// UpdateLeadRequest replaces the full lead record (last write wins).
type UpdateLeadRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Origin       string `json:"origin"`
	FunnelStatus string `json:"funnelStatus"`
	TaxID        string `json:"taxID" binding:"omitempty,taxid"`
}

// LeadResponse is the wire representation of a lead.
type LeadResponse struct {
	LeadID       int64   `json:"leadID"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email,omitempty"`
	Origin       string  `json:"origin,omitempty"`
	FunnelStatus string  `json:"funnelStatus,omitempty"`
	TaxID        *string `json:"taxID,omitempty"`
}

// ListLeadsResponse wraps the lead list endpoint payload.
type ListLeadsResponse struct {
	Leads []LeadResponse `json:"leads"`
}

// ToLeadResponse converts a domain lead to its response form.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:       l.LeadID,
		Name:         l.Name,
		Phone:        l.Phone,
		Email:        l.Email,
		Origin:       l.Origin,
		FunnelStatus: l.FunnelStatus,
		TaxID:        l.TaxID,
	}
}
