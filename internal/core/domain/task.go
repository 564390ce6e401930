package domain

// TaskPriority is the fixed priority scale enforced by a CHECK constraint.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = "Pending"

// Task belongs to at most one project and is removed with it (ON DELETE CASCADE).
// Users are assigned to tasks through the user_tasks join table.
type Task struct {
	TaskID      int64        `json:"taskID"`
	Responsible string       `json:"responsible,omitempty"`
	Status      string       `json:"status"`
	Priority    TaskPriority `json:"priority,omitempty"`
	Description string       `json:"description,omitempty"`
	ProjectID   *int64       `json:"projectID,omitempty"`
}
