package models

import "time"

// TaskStatus is the board column a task currently occupies.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskType classifies the kind of work a task represents.
type TaskType string

const (
	TaskFeature       TaskType = "feature"
	TaskBugWork       TaskType = "bug"
	TaskImprovement   TaskType = "improvement"
	TaskDocumentation TaskType = "documentation"
	TaskTesting       TaskType = "testing"
)

// Task is a unit of work scoped to a project. Moving a task between
// board columns is a plain status mutation through the task store.
type Task struct {
	Meta

	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`

	ProjectID  string `json:"project_id"`
	AssignedTo string `json:"assigned_to,omitempty"`
	ReporterID string `json:"reporter_id"`

	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours,omitempty"`

	TaskType TaskType `json:"task_type"`
	Labels   []string `json:"labels,omitempty"`

	Attachments []Attachment `json:"attachments,omitempty"`

	CreatedBy string `json:"created_by"`
}

// Collection returns the name of the remote collection that stores
// tasks.
func (Task) Collection() string { return "tasks" }

// Stamped returns a copy of the task with both lifecycle timestamps set.
func (t Task) Stamped(created, updated time.Time) Task {
	t.CreatedAt, t.UpdatedAt = created, updated
	return t
}
