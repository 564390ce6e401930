package services

import (
	"context"
	"fmt"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// optionalTaxID maps the blank form value to a NULL column so the partial
// unique index on tax_id only ever sees real values.
func optionalTaxID(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

type LeadService struct {
	leadRepo portsrepo.LeadRepository
}

func NewLeadService(leadRepo portsrepo.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

func (s *LeadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error) {
	lead := domain.Lead{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Origin:       req.Origin,
		FunnelStatus: req.FunnelStatus,
		TaxID:        optionalTaxID(req.TaxID),
	}
	saved, err := s.leadRepo.SaveLead(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return saved, nil
}

func (s *LeadService) GetLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error) {
	return s.leadRepo.FindLeadByID(ctx, leadID)
}

func (s *LeadService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leadRepo.FindLeads(ctx)
}

func (s *LeadService) UpdateLead(ctx context.Context, leadID int64, req dto.UpdateLeadRequest) (*domain.Lead, error) {
	lead := domain.Lead{
		LeadID:       leadID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Origin:       req.Origin,
		FunnelStatus: req.FunnelStatus,
		TaxID:        optionalTaxID(req.TaxID),
	}
	if err := s.leadRepo.UpdateLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead %d: %w", leadID, err)
	}
	return &lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, leadID int64) error {
	return s.leadRepo.DeleteLead(ctx, leadID)
}

type ClientService struct {
	clientRepo portsrepo.ClientRepository
}

func NewClientService(clientRepo portsrepo.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		TaxID:      optionalTaxID(req.TaxID),
		ActivePlan: req.ActivePlan,
		LeadID:     req.LeadID,
	}
	saved, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return saved, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.FindClients(ctx)
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		ClientID:   clientID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		TaxID:      optionalTaxID(req.TaxID),
		ActivePlan: req.ActivePlan,
		LeadID:     req.LeadID,
	}
	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client %d: %w", clientID, err)
	}
	return &client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	return s.clientRepo.DeleteClient(ctx, clientID)
}

type SupportService struct {
	supportRepo portsrepo.SupportRepository
}

func NewSupportService(supportRepo portsrepo.SupportRepository) *SupportService {
	return &SupportService{supportRepo: supportRepo}
}

func (s *SupportService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*domain.SupportTicket, error) {
	ticket := domain.SupportTicket{
		Subject:     req.Subject,
		Requester:   req.Requester,
		Description: req.Description,
		ClientID:    req.ClientID,
	}
	saved, err := s.supportRepo.SaveTicket(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to create support ticket: %w", err)
	}
	return saved, nil
}

func (s *SupportService) GetTicketByID(ctx context.Context, ticketID int64) (*domain.SupportTicket, error) {
	return s.supportRepo.FindTicketByID(ctx, ticketID)
}

func (s *SupportService) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.supportRepo.FindTickets(ctx)
}

func (s *SupportService) UpdateTicket(ctx context.Context, ticketID int64, req dto.UpdateTicketRequest) (*domain.SupportTicket, error) {
	existing, err := s.supportRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	ticket := domain.SupportTicket{
		TicketID:    ticketID,
		Subject:     req.Subject,
		Requester:   req.Requester,
		Description: req.Description,
		OpenedAt:    existing.OpenedAt,
		ClientID:    req.ClientID,
	}
	if err := s.supportRepo.UpdateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update support ticket %d: %w", ticketID, err)
	}
	return &ticket, nil
}

func (s *SupportService) DeleteTicket(ctx context.Context, ticketID int64) error {
	return s.supportRepo.DeleteTicket(ctx, ticketID)
}
