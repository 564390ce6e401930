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
	"github.com/wevomedia/wevo_media_app/internal/platform/config"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByTaxID(ctx context.Context, taxID string) (*domain.User, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, taxID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, taxID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, taxID string, actorTaxID string) error {
	args := m.Called(ctx, taxID, actorTaxID)
	return args.Error(0)
}

func (m *MockUserService) ToggleRole(ctx context.Context, taxID string, actorTaxID string) (*domain.User, error) {
	args := m.Called(ctx, taxID, actorTaxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	cfg             *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(utils.RegisterCustomValidators())

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "wevo-test",
		SessionCookieName: "wevo_session",
	}
	suite.mockUserService = new(MockUserService)

	suite.router = gin.New()
	registerAuthRoutes(suite.router, suite.cfg, suite.mockUserService)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{
		TaxID:        "11122233344",
		Name:         "Ana Souza",
		Email:        "ana@wevo.media",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "ana@wevo.media").Return(user, nil)

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: "ana@wevo.media", Password: "secret123"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal("11122233344", resp.User.TaxID)

	claims, err := utils.ParseSessionToken(resp.Token, suite.cfg.JWTSecret)
	suite.NoError(err)
	suite.Equal("11122233344", claims.Subject)
	suite.Equal("admin", claims.Role)

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(suite.cfg.SessionCookieName, cookies[0].Name)
	suite.Equal(resp.Token, cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{Email: "ana@wevo.media", PasswordHash: hash}
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "ana@wevo.media").Return(user, nil)

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: "ana@wevo.media", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "nobody@wevo.media").Return(nil, apperrors.ErrNotFound)

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: "nobody@wevo.media", Password: "secret123"})

	// Unknown email and wrong password are indistinguishable on the wire.
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{
		TaxID:           "99988877766",
		Name:            "Bruno Lima",
		Email:           "bruno@wevo.media",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	created := &domain.User{TaxID: req.TaxID, Name: req.Name, Email: req.Email, Role: domain.RoleNormal}
	suite.mockUserService.On("Register", mock.Anything, req).Return(created, nil)

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("normal", resp.Role)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_PasswordMismatch() {
	w := suite.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		TaxID:           "99988877766",
		Name:            "Bruno Lima",
		Email:           "bruno@wevo.media",
		Password:        "secret123",
		ConfirmPassword: "different",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateTaxID() {
	req := dto.RegisterRequest{
		TaxID:           "99988877766",
		Name:            "Bruno Lima",
		Email:           "bruno@wevo.media",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	suite.mockUserService.On("Register", mock.Anything, req).Return(nil, apperrors.ErrDuplicate)

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsCookie() {
	w := suite.postJSON("/api/v1/auth/logout", gin.H{})

	suite.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(suite.cfg.SessionCookieName, cookies[0].Name)
	suite.Empty(cookies[0].Value)
	suite.Less(cookies[0].MaxAge, 0)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
