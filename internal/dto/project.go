package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// CreateProjectRequest carries the form fields for a new project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateProjectRequest replaces the full project record.
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
}

// MemberRequest identifies a user for project membership changes.
type MemberRequest struct {
	TaxID string `json:"taxID" binding:"required,taxid"`
}

// ProjectResponse is the wire representation of a project.
type ProjectResponse struct {
	ProjectID   int64  `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// ListProjectsResponse wraps the project list endpoint payload.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain project to its response form.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
	}
}
