package dto

import (
	"time"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// CreateTicketRequest carries the form fields for a new support ticket.
// The opened-at timestamp is assigned by the database.
type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Requester   string `json:"requester"`
	Description string `json:"description"`
	ClientID    int64  `json:"clientID" binding:"required"`
}

// UpdateTicketRequest replaces the full ticket record.
type UpdateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Requester   string `json:"requester"`
	Description string `json:"description"`
	ClientID    int64  `json:"clientID" binding:"required"`
}

// TicketResponse is the wire representation of a support ticket.
type TicketResponse struct {
	TicketID    int64     `json:"ticketID"`
	Subject     string    `json:"subject"`
	Requester   string    `json:"requester,omitempty"`
	Description string    `json:"description,omitempty"`
	OpenedAt    time.Time `json:"openedAt"`
	ClientID    int64     `json:"clientID"`
}

// ListTicketsResponse wraps the ticket list endpoint payload.
type ListTicketsResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// ToTicketResponse converts a domain ticket to its response form.
func ToTicketResponse(t *domain.SupportTicket) TicketResponse {
	return TicketResponse{
		TicketID:    t.TicketID,
		Subject:     t.Subject,
		Requester:   t.Requester,
		Description: t.Description,
		OpenedAt:    t.OpenedAt,
		ClientID:    t.ClientID,
	}
}
