package domain

// DefaultProjectStatus is applied when a project is created without a status.
const DefaultProjectStatus = "In progress"

// Project groups tasks and financial entries and has user members (N:N).
type Project struct {
	ProjectID   int64  `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}
