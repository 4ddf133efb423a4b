package models

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Priority is the shared low..critical scale used by projects and tasks.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Project is the top-level grouping entity. Tasks and bugs reference it
// through their project_id foreign key.
type Project struct {
	Meta

	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`

	// ProjectManagerID and TeamMembers reference user IDs.
	ProjectManagerID string   `json:"project_manager_id"`
	TeamMembers      []string `json:"team_members"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Priority Priority `json:"priority"`
	Budget   float64  `json:"budget"`

	// Progress is a 0..100 completion percentage maintained by hand.
	Progress int `json:"progress"`

	CreatedBy string `json:"created_by"`
}

// Collection returns the name of the remote collection that stores
// projects.
func (Project) Collection() string { return "projects" }

// Stamped returns a copy of the project with both lifecycle timestamps
// set. Used by the synchronization layer on create.
func (p Project) Stamped(created, updated time.Time) Project {
	p.CreatedAt, p.UpdatedAt = created, updated
	return p
}
