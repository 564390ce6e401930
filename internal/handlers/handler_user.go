package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// userHandler handles HTTP requests for user administration. All routes are
// admin only except reading your own account.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:taxID", h.getUser)
		users.PUT("/:taxID", h.updateUser)
		users.DELETE("/:taxID", h.deleteUser)
		users.POST("/:taxID/toggle-role", h.toggleRole)
	}
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.RequireAdmin(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create user")
		return
	}

	logger.Info("User created",
		slog.String("new_user_tax_id", user.TaxID),
		slog.String("created_by", actor.TaxID),
	)
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list users")
		return
	}

	resp := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.RequireUser(c)
	if !ok {
		return
	}
	taxID := c.Param("taxID")

	// Only admins may read accounts other than their own.
	if taxID != actor.TaxID && !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin privileges required"})
		return
	}

	user, err := h.userService.GetUserByTaxID(c.Request.Context(), taxID)
	if err != nil {
		respondServiceError(c, logger, err, "get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	taxID := c.Param("taxID")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), taxID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.RequireAdmin(c)
	if !ok {
		return
	}
	taxID := c.Param("taxID")

	if err := h.userService.DeleteUser(c.Request.Context(), taxID, actor.TaxID); err != nil {
		respondServiceError(c, logger, err, "delete user")
		return
	}

	logger.Info("User deleted",
		slog.String("deleted_tax_id", taxID),
		slog.String("deleted_by", actor.TaxID),
	)
	c.Status(http.StatusNoContent)
}

func (h *userHandler) toggleRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.RequireAdmin(c)
	if !ok {
		return
	}
	taxID := c.Param("taxID")

	user, err := h.userService.ToggleRole(c.Request.Context(), taxID, actor.TaxID)
	if err != nil {
		respondServiceError(c, logger, err, "toggle user role")
		return
	}

	logger.Info("User role toggled",
		slog.String("user_tax_id", taxID),
		slog.String("new_role", string(user.Role)),
	)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
