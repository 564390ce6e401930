package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

// --- Mock LeadService ---
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) GetLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLead(ctx context.Context, leadID int64, req dto.UpdateLeadRequest) (*domain.Lead, error) {
	args := m.Called(ctx, leadID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) DeleteLead(ctx context.Context, leadID int64) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

var _ portssvc.LeadSvcFacade = (*MockLeadService)(nil)

// --- Test Suite ---
type LeadHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLeadService *MockLeadService
	jwtSecret       string
	cookieName      string
}

func (suite *LeadHandlerTestSuite) sessionToken(role string) string {
	token, err := utils.GenerateSessionToken("11122233344", "Test User", "test@wevo.media", role, suite.jwtSecret, time.Hour, "wevo-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(utils.RegisterCustomValidators())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.cookieName = "wevo_session"
	suite.mockLeadService = new(MockLeadService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, suite.cookieName))
	registerLeadRoutes(v1, suite.mockLeadService)
}

func (suite *LeadHandlerTestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LeadHandlerTestSuite) TestCreateLead_Success() {
	req := dto.CreateLeadRequest{Name: "Agency Prospect", Origin: "Instagram"}
	created := &domain.Lead{LeadID: 1, Name: "Agency Prospect", Origin: "Instagram"}

	suite.mockLeadService.On("CreateLead", mock.Anything, req).Return(created, nil)

	w := suite.request(http.MethodPost, "/api/v1/leads", suite.sessionToken("normal"), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LeadResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.LeadID)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestCreateLead_Unauthenticated() {
	w := suite.request(http.MethodPost, "/api/v1/leads", "", dto.CreateLeadRequest{Name: "x"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "CreateLead", mock.Anything, mock.Anything)
}

func (suite *LeadHandlerTestSuite) TestCreateLead_MissingName() {
	w := suite.request(http.MethodPost, "/api/v1/leads", suite.sessionToken("normal"), gin.H{"origin": "Instagram"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "CreateLead", mock.Anything, mock.Anything)
}

func (suite *LeadHandlerTestSuite) TestCreateLead_MalformedTaxID() {
	w := suite.request(http.MethodPost, "/api/v1/leads", suite.sessionToken("normal"),
		gin.H{"name": "Agency Prospect", "taxID": "123"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "CreateLead", mock.Anything, mock.Anything)
}

func (suite *LeadHandlerTestSuite) TestGetLead_NotFound() {
	suite.mockLeadService.On("GetLeadByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound)

	w := suite.request(http.MethodGet, "/api/v1/leads/99", suite.sessionToken("normal"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestGetLead_BadID() {
	w := suite.request(http.MethodGet, "/api/v1/leads/abc", suite.sessionToken("normal"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "GetLeadByID", mock.Anything, mock.Anything)
}

func (suite *LeadHandlerTestSuite) TestDeleteLead_NormalUserForbidden() {
	w := suite.request(http.MethodDelete, "/api/v1/leads/1", suite.sessionToken("normal"), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "DeleteLead", mock.Anything, mock.Anything)
}

func (suite *LeadHandlerTestSuite) TestDeleteLead_AdminSucceeds() {
	suite.mockLeadService.On("DeleteLead", mock.Anything, int64(1)).Return(nil)

	w := suite.request(http.MethodDelete, "/api/v1/leads/1", suite.sessionToken("admin"), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestListLeads_Success() {
	leads := []domain.Lead{{LeadID: 1, Name: "Agency Prospect"}, {LeadID: 2, Name: "Second Prospect"}}
	suite.mockLeadService.On("ListLeads", mock.Anything).Return(leads, nil)

	w := suite.request(http.MethodGet, "/api/v1/leads", suite.sessionToken("normal"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLeadsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Leads, 2)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
