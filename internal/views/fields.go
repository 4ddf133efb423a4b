package views

import "github.com/ovoronin/go-issue-tracker/models"

// Per-entity field accessors for the filter predicates. Only the
// fields the screens actually filter on are exposed.

// ProjectField implements [FieldFunc] for projects.
func ProjectField(p models.Project, field string) string {
	switch field {
	case "status":
		return string(p.Status)
	case "priority":
		return string(p.Priority)
	case "project_manager_id":
		return p.ProjectManagerID
	case "created_by":
		return p.CreatedBy
	default:
		return ""
	}
}

// ProjectText implements [TextFunc] for projects.
func ProjectText(p models.Project) (string, string) {
	return p.Name, p.Description
}

// TaskField implements [FieldFunc] for tasks.
func TaskField(t models.Task, field string) string {
	switch field {
	case "status":
		return string(t.Status)
	case "priority":
		return string(t.Priority)
	case "task_type":
		return string(t.TaskType)
	case "project_id":
		return t.ProjectID
	case "assigned_to":
		return t.AssignedTo
	case "reporter_id":
		return t.ReporterID
	default:
		return ""
	}
}

// TaskText implements [TextFunc] for tasks.
func TaskText(t models.Task) (string, string) {
	return t.Title, t.Description
}

// BugField implements [FieldFunc] for bugs.
func BugField(b models.Bug, field string) string {
	switch field {
	case "status":
		return string(b.Status)
	case "severity":
		return string(b.Severity)
	case "priority":
		return string(b.Priority)
	case "project_id":
		return b.ProjectID
	case "assigned_to":
		return b.AssignedTo
	case "reporter_id":
		return b.ReporterID
	default:
		return ""
	}
}

// BugText implements [TextFunc] for bugs.
func BugText(b models.Bug) (string, string) {
	return b.Title, b.Description
}

// NotificationField implements [FieldFunc] for notifications.
func NotificationField(n models.Notification, field string) string {
	switch field {
	case "type":
		return string(n.Type)
	case "recipient_id":
		return n.RecipientID
	case "sender_id":
		return n.SenderID
	case "is_read":
		if n.IsRead {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// NotificationText implements [TextFunc] for notifications.
func NotificationText(n models.Notification) (string, string) {
	return n.Title, n.Message
}
