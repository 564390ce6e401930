package repositories

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	SaveLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	FindLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error)
	FindLeads(ctx context.Context) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, lead domain.Lead) error
	DeleteLead(ctx context.Context, leadID int64) error
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	FindClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID int64) error
}

// SupportRepository defines persistence operations for support tickets.
type SupportRepository interface {
	SaveTicket(ctx context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error)
	FindTicketByID(ctx context.Context, ticketID int64) (*domain.SupportTicket, error)
	FindTickets(ctx context.Context) ([]domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, ticket domain.SupportTicket) error
	DeleteTicket(ctx context.Context, ticketID int64) error
}
