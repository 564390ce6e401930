package repositories

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects, including the
// user_projects membership join table.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	FindProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID int64) error

	AddMember(ctx context.Context, projectID int64, userTaxID string) error
	RemoveMember(ctx context.Context, projectID int64, userTaxID string) error
	FindMembers(ctx context.Context, projectID int64) ([]domain.User, error)
}

// TaskRepository defines persistence operations for tasks, including the
// user_tasks assignment join table.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)
	FindTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID int64) error

	AssignUser(ctx context.Context, taskID int64, userTaxID string) error
	UnassignUser(ctx context.Context, taskID int64, userTaxID string) error
	FindAssignees(ctx context.Context, taskID int64) ([]domain.User, error)
}
