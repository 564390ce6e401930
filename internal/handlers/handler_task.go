package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
)

// taskHandler handles HTTP requests for tasks and assignment.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask) // Admin only

		tasks.GET("/:id/assignees", h.listAssignees)
		tasks.POST("/:id/assignees", h.assignUser)
		tasks.DELETE("/:id/assignees/:taxID", h.unassignUser)
	}
}

func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create task")
		return
	}

	logger.Info("Task created", slog.Int64("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list tasks")
		return
	}

	resp := dto.ListTasksResponse{Tasks: make([]dto.TaskResponse, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, dto.ToTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *taskHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, logger, err, "get task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, logger, err, "delete task")
		return
	}

	logger.Info("Task deleted", slog.Int64("task_id", taskID))
	c.Status(http.StatusNoContent)
}

func (h *taskHandler) listAssignees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	assignees, err := h.taskService.ListAssignees(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, logger, err, "list task assignees")
		return
	}

	resp := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(assignees))}
	for i := range assignees {
		resp.Users = append(resp.Users, dto.ToUserResponse(&assignees[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *taskHandler) assignUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.AssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}

	if err := h.taskService.AssignUser(c.Request.Context(), taskID, req.TaxID); err != nil {
		respondServiceError(c, logger, err, "assign user to task")
		return
	}

	logger.Info("Task assignee added",
		slog.Int64("task_id", taskID),
		slog.String("user_tax_id", req.TaxID),
	)
	c.Status(http.StatusNoContent)
}

func (h *taskHandler) unassignUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	taskID, ok := idParam(c)
	if !ok {
		return
	}
	taxID := c.Param("taxID")

	if err := h.taskService.UnassignUser(c.Request.Context(), taskID, taxID); err != nil {
		respondServiceError(c, logger, err, "unassign user from task")
		return
	}

	logger.Info("Task assignee removed",
		slog.Int64("task_id", taskID),
		slog.String("user_tax_id", taxID),
	)
	c.Status(http.StatusNoContent)
}
