package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/core/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) (*domain.Contract, error) {
	args := m.Called(ctx, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID int64) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) FindContracts(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) DeleteContract(ctx context.Context, contractID int64) error {
	args := m.Called(ctx, contractID)
	return args.Error(0)
}

func (m *MockContractRepository) AttachClient(ctx context.Context, contractID int64, clientID int64) error {
	args := m.Called(ctx, contractID, clientID)
	return args.Error(0)
}

func (m *MockContractRepository) DetachClient(ctx context.Context, contractID int64, clientID int64) error {
	args := m.Called(ctx, contractID, clientID)
	return args.Error(0)
}

func (m *MockContractRepository) FindContractClients(ctx context.Context, contractID int64) ([]domain.Client, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// --- Mock PayableRepository ---
type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error) {
	args := m.Called(ctx, payable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, payableID int64) (*domain.Payable, error) {
	args := m.Called(ctx, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) FindPayables(ctx context.Context) ([]domain.Payable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) UpdatePayable(ctx context.Context, payable domain.Payable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) DeletePayable(ctx context.Context, payableID int64) error {
	args := m.Called(ctx, payableID)
	return args.Error(0)
}

// --- Mock ReceivableRepository ---
type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) (*domain.Receivable, error) {
	args := m.Called(ctx, receivable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) FindReceivableByID(ctx context.Context, receivableID int64) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) FindReceivables(ctx context.Context) ([]domain.Receivable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) UpdateReceivable(ctx context.Context, receivable domain.Receivable) error {
	args := m.Called(ctx, receivable)
	return args.Error(0)
}

func (m *MockReceivableRepository) DeleteReceivable(ctx context.Context, receivableID int64) error {
	args := m.Called(ctx, receivableID)
	return args.Error(0)
}

// --- Contract Test Suite ---
type ContractServiceTestSuite struct {
	suite.Suite
	mockRepo *MockContractRepository
	service  *services.ContractService
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockContractRepository)
	suite.service = services.NewContractService(suite.mockRepo)
}

func (suite *ContractServiceTestSuite) TestCreateContract_DefaultsStatus() {
	ctx := context.Background()
	req := dto.CreateContractRequest{
		StartDate: "2025-01-15",
		Amount:    decimal.NewFromInt(1200),
	}

	suite.mockRepo.On("SaveContract", ctx, mock.MatchedBy(func(c domain.Contract) bool {
		return c.Status == domain.DefaultContractStatus &&
			c.StartDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			c.EndDate == nil
	})).Return(&domain.Contract{ContractID: 1, Status: domain.DefaultContractStatus}, nil)

	contract, err := suite.service.CreateContract(ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.DefaultContractStatus, contract.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_BadStartDate() {
	ctx := context.Background()
	req := dto.CreateContractRequest{
		StartDate: "15/01/2025",
		Amount:    decimal.NewFromInt(1200),
	}

	contract, err := suite.service.CreateContract(ctx, req)

	assert.Nil(suite.T(), contract)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestAttachClient_Duplicate() {
	ctx := context.Background()

	suite.mockRepo.On("AttachClient", ctx, int64(1), int64(2)).Return(apperrors.ErrDuplicate)

	err := suite.service.AttachClient(ctx, 1, 2)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestListContractClients_ContractMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindContractByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound)

	clients, err := suite.service.ListContractClients(ctx, 99)

	assert.Nil(suite.T(), clients)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindContractClients", mock.Anything, mock.Anything)
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}

// --- Payable Test Suite ---
type PayableServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPayableRepository
	service  *services.PayableService
}

func (suite *PayableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayableRepository)
	suite.service = services.NewPayableService(suite.mockRepo)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_DefaultsStatusPending() {
	ctx := context.Background()
	req := dto.CreatePayableRequest{
		Beneficiary: "Hosting provider",
		DueDate:     "2025-06-01",
		Amount:      decimal.NewFromFloat(349.90),
	}

	suite.mockRepo.On("SavePayable", ctx, mock.MatchedBy(func(p domain.Payable) bool {
		return p.Status == domain.StatusPending
	})).Return(&domain.Payable{PayableID: 1, Status: domain.StatusPending}, nil)

	payable, err := suite.service.CreatePayable(ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusPending, payable.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_ExplicitStatusKept() {
	ctx := context.Background()
	req := dto.CreatePayableRequest{
		DueDate: "2025-06-01",
		Amount:  decimal.NewFromInt(100),
		Status:  "Paid",
	}

	suite.mockRepo.On("SavePayable", ctx, mock.MatchedBy(func(p domain.Payable) bool {
		return p.Status == "Paid"
	})).Return(&domain.Payable{PayableID: 2, Status: "Paid"}, nil)

	_, err := suite.service.CreatePayable(ctx, req)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPayableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayableServiceTestSuite))
}

// --- Receivable Test Suite ---
type ReceivableServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReceivableRepository
	service  *services.ReceivableService
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReceivableRepository)
	suite.service = services.NewReceivableService(suite.mockRepo)
}

func (suite *ReceivableServiceTestSuite) TestCreateReceivable_NoReceivedAt() {
	ctx := context.Background()
	clientID := int64(3)
	req := dto.CreateReceivableRequest{
		Amount:   decimal.NewFromInt(500),
		ClientID: &clientID,
	}

	suite.mockRepo.On("SaveReceivable", ctx, mock.MatchedBy(func(r domain.Receivable) bool {
		return r.ReceivedAt == nil && r.Status == domain.StatusPending && r.ClientID != nil && *r.ClientID == clientID
	})).Return(&domain.Receivable{ReceivableID: 1, Status: domain.StatusPending}, nil)

	receivable, err := suite.service.CreateReceivable(ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusPending, receivable.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestCreateReceivable_ReceivedAtParsed() {
	ctx := context.Background()
	req := dto.CreateReceivableRequest{
		ReceivedAt: "2025-05-20",
		Amount:     decimal.NewFromInt(500),
		Status:     "Received",
	}

	suite.mockRepo.On("SaveReceivable", ctx, mock.MatchedBy(func(r domain.Receivable) bool {
		return r.ReceivedAt != nil && r.ReceivedAt.Equal(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Receivable{ReceivableID: 2, Status: "Received"}, nil)

	_, err := suite.service.CreateReceivable(ctx, req)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
