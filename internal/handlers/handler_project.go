package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// projectHandler handles HTTP requests for projects and membership.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject) // Admin only

		projects.GET("/:id/members", h.listMembers)
		projects.POST("/:id/members", h.addMember)
		projects.DELETE("/:id/members/:taxID", h.removeMember)
	}
}

func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create project")
		return
	}

	logger.Info("Project created", slog.Int64("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list projects")
		return
	}

	resp := dto.ListProjectsResponse{Projects: make([]dto.ProjectResponse, 0, len(projects))}
	for i := range projects {
		resp.Projects = append(resp.Projects, dto.ToProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondServiceError(c, logger, err, "delete project")
		return
	}

	logger.Info("Project deleted", slog.Int64("project_id", projectID))
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "list project members")
		return
	}

	resp := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(members))}
	for i := range members {
		resp.Users = append(resp.Users, dto.ToUserResponse(&members[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *projectHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	if err := h.projectService.AddMember(c.Request.Context(), projectID, req.TaxID); err != nil {
		respondServiceError(c, logger, err, "add project member")
		return
	}

	logger.Info("Project member added",
		slog.Int64("project_id", projectID),
		slog.String("user_tax_id", req.TaxID),
	)
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	projectID, ok := idParam(c)
	if !ok {
		return
	}
	taxID := c.Param("taxID")

	if err := h.projectService.RemoveMember(c.Request.Context(), projectID, taxID); err != nil {
		respondServiceError(c, logger, err, "remove project member")
		return
	}

	logger.Info("Project member removed",
		slog.Int64("project_id", projectID),
		slog.String("user_tax_id", taxID),
	)
	c.Status(http.StatusNoContent)
}
