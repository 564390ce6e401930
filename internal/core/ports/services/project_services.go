package services

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// ProjectSvcFacade defines the service operations for projects and membership.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error

	AddMember(ctx context.Context, projectID int64, userTaxID string) error
	RemoveMember(ctx context.Context, projectID int64, userTaxID string) error
	ListMembers(ctx context.Context, projectID int64) ([]domain.User, error)
}

// TaskSvcFacade defines the service operations for tasks and assignment.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error)
	GetTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	AssignUser(ctx context.Context, taskID int64, userTaxID string) error
	UnassignUser(ctx context.Context, taskID int64, userTaxID string) error
	ListAssignees(ctx context.Context, taskID int64) ([]domain.User, error)
}
