package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// CreateTaskRequest carries the form fields for a new task.
type CreateTaskRequest struct {
	Responsible string `json:"responsible"`
	Status      string `json:"status"`
	Priority    string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Description string `json:"description"`
	ProjectID   *int64 `json:"projectID"`
}

// UpdateTaskRequest replaces the full task record.
type UpdateTaskRequest struct {
	Responsible string `json:"responsible"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Description string `json:"description"`
	ProjectID   *int64 `json:"projectID"`
}

// AssigneeRequest identifies a user for task assignment changes.
type AssigneeRequest struct {
	TaxID string `json:"taxID" binding:"required,taxid"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	TaskID      int64  `json:"taskID"`
	Responsible string `json:"responsible,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority,omitempty"`
	Description string `json:"description,omitempty"`
	ProjectID   *int64 `json:"projectID,omitempty"`
}

// ListTasksResponse wraps the task list endpoint payload.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain task to its response form.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:      t.TaskID,
		Responsible: t.Responsible,
		Status:      t.Status,
		Priority:    string(t.Priority),
		Description: t.Description,
		ProjectID:   t.ProjectID,
	}
}
