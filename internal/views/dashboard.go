package views

import (
	"sort"
	"time"

	"github.com/ovoronin/go-issue-tracker/models"
)

// MaxUpcomingDeadlines caps the dashboard's deadline list.
const MaxUpcomingDeadlines = 5

// UpcomingDeadlines returns the tasks with a due date strictly after
// now, soonest first, capped at [MaxUpcomingDeadlines]. Tasks without a
// due date never appear.
func UpcomingDeadlines(tasks []models.Task, now time.Time) []models.Task {
	due := make([]models.Task, 0, MaxUpcomingDeadlines)
	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.After(now) {
			due = append(due, task)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(*due[j].DueDate)
	})

	if len(due) > MaxUpcomingDeadlines {
		due = due[:MaxUpcomingDeadlines]
	}
	return due
}

// ActivityKind tags an activity entry with the entity kind it came
// from, so the feed can render and link the two differently.
type ActivityKind string

const (
	ActivityTask ActivityKind = "task"
	ActivityBug  ActivityKind = "bug"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Kind      ActivityKind
	ID        string
	Title     string
	Status    string
	UpdatedAt time.Time
}

// RecentActivity merges tasks and bugs into one feed, most recently
// updated first, capped at limit. A non-positive limit returns an
// empty feed.
func RecentActivity(tasks []models.Task, bugs []models.Bug, limit int) []Activity {
	if limit <= 0 {
		return nil
	}

	feed := make([]Activity, 0, len(tasks)+len(bugs))
	for _, task := range tasks {
		feed = append(feed, Activity{
			Kind:      ActivityTask,
			ID:        task.ID,
			Title:     task.Title,
			Status:    string(task.Status),
			UpdatedAt: task.UpdatedAt,
		})
	}
	for _, bug := range bugs {
		feed = append(feed, Activity{
			Kind:      ActivityBug,
			ID:        bug.ID,
			Title:     bug.Title,
			Status:    string(bug.Status),
			UpdatedAt: bug.UpdatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].UpdatedAt.After(feed[j].UpdatedAt)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// BoardColumns is the fixed column order of the task board.
var BoardColumns = []models.TaskStatus{
	models.TaskTodo,
	models.TaskInProgress,
	models.TaskReview,
	models.TaskDone,
	models.TaskCancelled,
}

// TasksByStatus splits the tasks into board columns, preserving the
// input order inside each column. Every column of [BoardColumns] is
// present in the result even when empty.
func TasksByStatus(tasks []models.Task) map[models.TaskStatus][]models.Task {
	columns := make(map[models.TaskStatus][]models.Task, len(BoardColumns))
	for _, status := range BoardColumns {
		columns[status] = []models.Task{}
	}
	for _, task := range tasks {
		if _, ok := columns[task.Status]; ok {
			columns[task.Status] = append(columns[task.Status], task)
		}
	}
	return columns
}
