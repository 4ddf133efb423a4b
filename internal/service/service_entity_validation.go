package service

import (
	"fmt"

	"github.com/ovoronin/go-issue-tracker/models"
)

// Enum allowlists per collection. Empty document values pass the enum
// check (optional fields); required fields are checked separately.
var (
	projectStatuses = enumSet(
		models.ProjectPlanning, models.ProjectActive, models.ProjectOnHold,
		models.ProjectCompleted, models.ProjectCancelled,
	)
	priorities = enumSet(
		models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical,
	)
	taskStatuses = enumSet(
		models.TaskTodo, models.TaskInProgress, models.TaskReview,
		models.TaskDone, models.TaskCancelled,
	)
	taskTypes = enumSet(
		models.TaskFeature, models.TaskBugWork, models.TaskImprovement,
		models.TaskDocumentation, models.TaskTesting,
	)
	bugSeverities = enumSet(
		models.SeverityTrivial, models.SeverityMinor, models.SeverityMajor,
		models.SeverityCritical, models.SeverityBlocker,
	)
	bugStatuses = enumSet(
		models.BugNew, models.BugOpen, models.BugInProgress, models.BugFixed,
		models.BugVerified, models.BugClosed, models.BugReopened,
	)
	notificationTypes = enumSet(
		models.NotifyTaskAssigned, models.NotifyBugReported, models.NotifyCommentAdded,
		models.NotifyStatusChanged, models.NotifyDeadlineReminder, models.NotifyMention,
	)
)

func enumSet[E ~string](values ...E) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[string(v)] = struct{}{}
	}
	return set
}

// validateDoc checks the per-collection required fields and enum
// values of a decoded document. Called on create and after every patch
// merge, so an update can never leave a document invalid.
func validateDoc(collection string, fields map[string]any) error {
	switch collection {
	case "projects":
		if err := requireFields(fields, "name"); err != nil {
			return err
		}
		if err := checkEnum(fields, "status", projectStatuses); err != nil {
			return err
		}
		return checkEnum(fields, "priority", priorities)

	case "tasks":
		if err := requireFields(fields, "title", "project_id"); err != nil {
			return err
		}
		if err := checkEnum(fields, "status", taskStatuses); err != nil {
			return err
		}
		if err := checkEnum(fields, "priority", priorities); err != nil {
			return err
		}
		return checkEnum(fields, "task_type", taskTypes)

	case "bugs":
		if err := requireFields(fields, "title", "project_id"); err != nil {
			return err
		}
		if err := checkEnum(fields, "status", bugStatuses); err != nil {
			return err
		}
		if err := checkEnum(fields, "priority", priorities); err != nil {
			return err
		}
		return checkEnum(fields, "severity", bugSeverities)

	case "notifications":
		if err := requireFields(fields, "title", "recipient_id"); err != nil {
			return err
		}
		return checkEnum(fields, "type", notificationTypes)
	}

	return nil
}

func requireFields(fields map[string]any, names ...string) error {
	for _, name := range names {
		if docString(fields, name) == "" {
			return fmt.Errorf("%w: missing required field %q", ErrInvalidDataProvided, name)
		}
	}
	return nil
}

func checkEnum(fields map[string]any, name string, allowed map[string]struct{}) error {
	value := docString(fields, name)
	if value == "" {
		return nil
	}
	if _, ok := allowed[value]; !ok {
		return fmt.Errorf("%w: unknown %s value %q", ErrInvalidDataProvided, name, value)
	}
	return nil
}
