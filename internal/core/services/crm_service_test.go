package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/core/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindLeads(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, leadID int64) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// --- Mock SupportRepository ---
type MockSupportRepository struct {
	mock.Mock
}

func (m *MockSupportRepository) SaveTicket(ctx context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error) {
	args := m.Called(ctx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *MockSupportRepository) FindTicketByID(ctx context.Context, ticketID int64) (*domain.SupportTicket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *MockSupportRepository) FindTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func (m *MockSupportRepository) UpdateTicket(ctx context.Context, ticket domain.SupportTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockSupportRepository) DeleteTicket(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// --- Lead Test Suite ---
type LeadServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLeadRepository
	service  *services.LeadService
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeadRepository)
	suite.service = services.NewLeadService(suite.mockRepo)
}

func (suite *LeadServiceTestSuite) TestCreateLead_BlankTaxIDBecomesNil() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{
		Name:         "Agency Prospect",
		Phone:        "11999990000",
		FunnelStatus: "New",
	}

	suite.mockRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.TaxID == nil && l.Name == req.Name
	})).Return(&domain.Lead{LeadID: 1, Name: req.Name}, nil)

	lead, err := suite.service.CreateLead(ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), lead.LeadID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestCreateLead_TaxIDPassedThrough() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{Name: "Agency Prospect", TaxID: "11122233344"}

	suite.mockRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.TaxID != nil && *l.TaxID == "11122233344"
	})).Return(&domain.Lead{LeadID: 2, Name: req.Name}, nil)

	_, err := suite.service.CreateLead(ctx, req)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestCreateLead_DuplicateTaxID() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{Name: "Agency Prospect", TaxID: "11122233344"}

	suite.mockRepo.On("SaveLead", ctx, mock.AnythingOfType("domain.Lead")).Return(nil, apperrors.ErrDuplicate)

	lead, err := suite.service.CreateLead(ctx, req)

	assert.Nil(suite.T(), lead)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestGetLeadByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindLeadByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound)

	lead, err := suite.service.GetLeadByID(ctx, 99)

	assert.Nil(suite.T(), lead)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestDeleteLead_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteLead", ctx, int64(5)).Return(nil)

	err := suite.service.DeleteLead(ctx, 5)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}

// --- Support Test Suite ---
type SupportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupportRepository
	service  *services.SupportService
}

func (suite *SupportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupportRepository)
	suite.service = services.NewSupportService(suite.mockRepo)
}

func (suite *SupportServiceTestSuite) TestCreateTicket_ClientMissing() {
	ctx := context.Background()
	req := dto.CreateTicketRequest{Subject: "Site down", ClientID: 42}

	suite.mockRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.SupportTicket")).
		Return(nil, apperrors.ErrValidation)

	ticket, err := suite.service.CreateTicket(ctx, req)

	assert.Nil(suite.T(), ticket)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupportServiceTestSuite) TestUpdateTicket_PreservesOpenedAt() {
	ctx := context.Background()
	openedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	existing := &domain.SupportTicket{
		TicketID: 7,
		Subject:  "Site down",
		OpenedAt: openedAt,
		ClientID: 42,
	}

	suite.mockRepo.On("FindTicketByID", ctx, int64(7)).Return(existing, nil)
	suite.mockRepo.On("UpdateTicket", ctx, mock.MatchedBy(func(t domain.SupportTicket) bool {
		return t.OpenedAt.Equal(openedAt) && t.Subject == "Site partially down"
	})).Return(nil)

	ticket, err := suite.service.UpdateTicket(ctx, 7, dto.UpdateTicketRequest{
		Subject:  "Site partially down",
		ClientID: 42,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ticket.OpenedAt.Equal(openedAt))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupportServiceTestSuite) TestUpdateTicket_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTicketByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound)

	ticket, err := suite.service.UpdateTicket(ctx, 99, dto.UpdateTicketRequest{Subject: "x", ClientID: 1})

	assert.Nil(suite.T(), ticket)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTicket", mock.Anything, mock.Anything)
}

func TestSupportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupportServiceTestSuite))
}
