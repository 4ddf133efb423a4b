package models

import "time"

// BugSeverity grades the impact of a defect.
type BugSeverity string

const (
	SeverityTrivial  BugSeverity = "trivial"
	SeverityMinor    BugSeverity = "minor"
	SeverityMajor    BugSeverity = "major"
	SeverityCritical BugSeverity = "critical"
	SeverityBlocker  BugSeverity = "blocker"
)

// BugStatus is the defect-tracking workflow state.
type BugStatus string

const (
	BugNew        BugStatus = "new"
	BugOpen       BugStatus = "open"
	BugInProgress BugStatus = "in_progress"
	BugFixed      BugStatus = "fixed"
	BugVerified   BugStatus = "verified"
	BugClosed     BugStatus = "closed"
	BugReopened   BugStatus = "reopened"
)

// Bug is a reported defect scoped to a project.
type Bug struct {
	Meta

	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    BugSeverity `json:"severity"`
	Priority    Priority    `json:"priority"`
	Status      BugStatus   `json:"status"`

	ProjectID  string `json:"project_id"`
	ReporterID string `json:"reporter_id"`
	AssignedTo string `json:"assigned_to,omitempty"`

	StepsToReproduce string `json:"steps_to_reproduce,omitempty"`
	ExpectedResult   string `json:"expected_result,omitempty"`
	ActualResult     string `json:"actual_result,omitempty"`
	Environment      string `json:"environment,omitempty"`
	Version          string `json:"version,omitempty"`

	Attachments []Attachment `json:"attachments,omitempty"`

	FixedInVersion string     `json:"fixed_in_version,omitempty"`
	VerifiedBy     string     `json:"verified_by,omitempty"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
}

// Collection returns the name of the remote collection that stores
// bugs.
func (Bug) Collection() string { return "bugs" }

// Stamped returns a copy of the bug with both lifecycle timestamps set.
func (b Bug) Stamped(created, updated time.Time) Bug {
	b.CreatedAt, b.UpdatedAt = created, updated
	return b
}

// Resolved reports whether the bug has left the open part of the
// workflow (fixed, verified or closed).
func (b Bug) Resolved() bool {
	switch b.Status {
	case BugFixed, BugVerified, BugClosed:
		return true
	}
	return false
}
