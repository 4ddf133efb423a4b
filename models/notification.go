package models

import "time"

// NotificationType labels the event that produced a notification.
type NotificationType string

const (
	NotifyTaskAssigned     NotificationType = "task_assigned"
	NotifyBugReported      NotificationType = "bug_reported"
	NotifyCommentAdded     NotificationType = "comment_added"
	NotifyStatusChanged    NotificationType = "status_changed"
	NotifyDeadlineReminder NotificationType = "deadline_reminder"
	NotifyMention          NotificationType = "mention"
)

// Notification is a recipient-scoped message produced by a write path
// that wants to inform a user. It is delivered into the recipient's
// collection on the next fetch, marked read individually or in bulk,
// and may be deleted.
type Notification struct {
	Meta

	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`

	RecipientID string `json:"recipient_id"`
	SenderID    string `json:"sender_id,omitempty"`

	// LinkedType/LinkedID point at the task, bug or project the
	// notification is about, when there is one.
	LinkedType string `json:"entity_type,omitempty"`
	LinkedID   string `json:"entity_id,omitempty"`

	ActionURL string `json:"action_url,omitempty"`

	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// Collection returns the name of the remote collection that stores
// notifications.
func (Notification) Collection() string { return "notifications" }

// Stamped returns a copy of the notification with both lifecycle
// timestamps set.
func (n Notification) Stamped(created, updated time.Time) Notification {
	n.CreatedAt, n.UpdatedAt = created, updated
	return n
}

// EmailMessage is the payload handed to the external email dispatch
// gateway. Dispatch is best-effort: a failed send never aborts the
// operation that produced it.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
