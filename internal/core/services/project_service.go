package services

import (
	"context"
	"fmt"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

type ProjectService struct {
	projectRepo portsrepo.ProjectRepository
}

func NewProjectService(projectRepo portsrepo.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	status := req.Status
	if status == "" {
		status = domain.DefaultProjectStatus
	}
	project := domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}
	saved, err := s.projectRepo.SaveProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return saved, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.FindProjects(ctx)
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project := domain.Project{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", projectID, err)
	}
	return &project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID int64) error {
	return s.projectRepo.DeleteProject(ctx, projectID)
}

func (s *ProjectService) AddMember(ctx context.Context, projectID int64, userTaxID string) error {
	return s.projectRepo.AddMember(ctx, projectID, userTaxID)
}

func (s *ProjectService) RemoveMember(ctx context.Context, projectID int64, userTaxID string) error {
	return s.projectRepo.RemoveMember(ctx, projectID, userTaxID)
}

func (s *ProjectService) ListMembers(ctx context.Context, projectID int64) ([]domain.User, error) {
	// Listing members of a missing project should say so rather than return
	// an empty list.
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projectRepo.FindMembers(ctx, projectID)
}

type TaskService struct {
	taskRepo portsrepo.TaskRepository
}

func NewTaskService(taskRepo portsrepo.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	status := req.Status
	if status == "" {
		status = domain.DefaultTaskStatus
	}
	task := domain.Task{
		Responsible: req.Responsible,
		Status:      status,
		Priority:    domain.TaskPriority(req.Priority),
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}
	saved, err := s.taskRepo.SaveTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return saved, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepo.FindTasks(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task := domain.Task{
		TaskID:      taskID,
		Responsible: req.Responsible,
		Status:      req.Status,
		Priority:    domain.TaskPriority(req.Priority),
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", taskID, err)
	}
	return &task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) error {
	return s.taskRepo.DeleteTask(ctx, taskID)
}

func (s *TaskService) AssignUser(ctx context.Context, taskID int64, userTaxID string) error {
	return s.taskRepo.AssignUser(ctx, taskID, userTaxID)
}

func (s *TaskService) UnassignUser(ctx context.Context, taskID int64, userTaxID string) error {
	return s.taskRepo.UnassignUser(ctx, taskID, userTaxID)
}

func (s *TaskService) ListAssignees(ctx context.Context, taskID int64) ([]domain.User, error) {
	if _, err := s.taskRepo.FindTaskByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindAssignees(ctx, taskID)
}
