package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
	"github.com/wevomedia/wevo_media_app/internal/platform/config"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

// AuthHandler handles login, logout and self registration.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate-limited per IP to slow down credential guessing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/register", h.Register)
	}
}

// Login authenticates with email and password and starts a session. The
// session token is returned in the body and also set as an HTTP-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	}

	token, err := utils.GenerateSessionToken(
		user.TaxID, user.Name, user.Email, string(user.Role),
		h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer,
	)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start session"})
		return
	}

	maxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", h.cfg.IsProduction, true)

	logger.Info("User logged in", slog.String("user_tax_id", user.TaxID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Logout clears the session cookie. The token itself simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Register creates a normal-role account from the public registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "register user")
		return
	}

	logger.Info("User registered", slog.String("user_tax_id", user.TaxID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
