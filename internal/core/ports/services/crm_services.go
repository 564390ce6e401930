package services

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// LeadSvcFacade defines the service operations for leads.
type LeadSvcFacade interface {
	CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error)
	GetLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error)
	ListLeads(ctx context.Context) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, leadID int64, req dto.UpdateLeadRequest) (*domain.Lead, error)
	DeleteLead(ctx context.Context, leadID int64) error
}

// ClientSvcFacade defines the service operations for clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// SupportSvcFacade defines the service operations for support tickets.
type SupportSvcFacade interface {
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*domain.SupportTicket, error)
	GetTicketByID(ctx context.Context, ticketID int64) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, ticketID int64, req dto.UpdateTicketRequest) (*domain.SupportTicket, error)
	DeleteTicket(ctx context.Context, ticketID int64) error
}
