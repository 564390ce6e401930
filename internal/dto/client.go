package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// CreateClientRequest carries the form fields for a new client.
type CreateClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	TaxID      string `json:"taxID" binding:"omitempty,taxid"`
	ActivePlan bool   `json:"activePlan"`
	LeadID     *int64 `json:"leadID"`
}

// UpdateClientRequest replaces the full client record.
type UpdateClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	TaxID      string `json:"taxID" binding:"omitempty,taxid"`
	ActivePlan bool   `json:"activePlan"`
	LeadID     *int64 `json:"leadID"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
	ClientID   int64   `json:"clientID"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	TaxID      *string `json:"taxID,omitempty"`
	ActivePlan bool    `json:"activePlan"`
	LeadID     *int64  `json:"leadID,omitempty"`
}

// ListClientsResponse wraps the client list endpoint payload.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain client to its response form.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:   c.ClientID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		TaxID:      c.TaxID,
		ActivePlan: c.ActivePlan,
		LeadID:     c.LeadID,
	}
}
