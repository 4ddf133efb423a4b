package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovoronin/go-issue-tracker/models"
)

func testTask(id, title, description string, status models.TaskStatus, priority models.Priority) models.Task {
	t := models.Task{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		ProjectID:   "proj-1",
	}
	t.ID = id
	return t
}

func TestFilter_EqualityAndWildcard(t *testing.T) {
	tasks := []models.Task{
		testTask("t1", "Fix login", "", models.TaskTodo, models.PriorityHigh),
		testTask("t2", "Write docs", "", models.TaskDone, models.PriorityLow),
		testTask("t3", "Refactor auth", "", models.TaskTodo, models.PriorityLow),
	}

	got := Filter(tasks, TaskField, TaskText, Criteria{
		Equals: map[string]string{"status": string(models.TaskTodo), "priority": MatchAll},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID, "input order preserved")
	assert.Equal(t, "t3", got[1].ID)
}

func TestFilter_SearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	tasks := []models.Task{
		testTask("t1", "Fix LOGIN page", "", models.TaskTodo, models.PriorityHigh),
		testTask("t2", "Write docs", "covers the login flow", models.TaskTodo, models.PriorityLow),
		testTask("t3", "Refactor auth", "", models.TaskTodo, models.PriorityLow),
	}

	got := Filter(tasks, TaskField, TaskText, Criteria{Search: "login"})

	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	tasks := []models.Task{
		testTask("t1", "Fix login", "", models.TaskTodo, models.PriorityHigh),
		testTask("t2", "Fix logout", "", models.TaskDone, models.PriorityHigh),
	}

	got := Filter(tasks, TaskField, TaskText, Criteria{
		Equals: map[string]string{"status": string(models.TaskTodo)},
		Search: "fix",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestCountWhere(t *testing.T) {
	bugs := []models.Bug{
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityMinor},
		{Severity: models.SeverityCritical},
	}

	assert.Equal(t, 2, CountWhere(bugs, BugField, "severity", string(models.SeverityCritical)))
	assert.Equal(t, 0, CountWhere(bugs, BugField, "severity", string(models.SeverityBlocker)))
}

func TestGroupCounts_ZeroFilledInBucketOrder(t *testing.T) {
	tasks := []models.Task{
		testTask("t1", "a", "", models.TaskDone, models.PriorityLow),
		testTask("t2", "b", "", models.TaskTodo, models.PriorityLow),
		testTask("t3", "c", "", models.TaskDone, models.PriorityLow),
	}

	buckets := []string{
		string(models.TaskTodo),
		string(models.TaskInProgress),
		string(models.TaskReview),
		string(models.TaskDone),
	}
	got := GroupCounts(tasks, TaskField, "status", buckets)

	require.Equal(t, []GroupCount{
		{Label: "todo", Count: 1},
		{Label: "in_progress", Count: 0},
		{Label: "review", Count: 0},
		{Label: "done", Count: 2},
	}, got)
}

func TestUpcomingDeadlines(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	dueIn := func(d time.Duration) *time.Time {
		due := now.Add(d)
		return &due
	}

	tasks := []models.Task{
		testTask("past", "overdue", "", models.TaskTodo, models.PriorityLow),
		testTask("none", "no deadline", "", models.TaskTodo, models.PriorityLow),
	}
	tasks[0].DueDate = dueIn(-time.Hour)
	for i := 0; i < 7; i++ {
		task := testTask("t"+string(rune('a'+i)), "future", "", models.TaskTodo, models.PriorityLow)
		task.DueDate = dueIn(time.Duration(7-i) * time.Hour)
		tasks = append(tasks, task)
	}

	got := UpcomingDeadlines(tasks, now)

	require.Len(t, got, MaxUpcomingDeadlines, "capped")
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].DueDate.Before(*got[i-1].DueDate), "ascending by due date")
	}
	for _, task := range got {
		assert.True(t, task.DueDate.After(now), "strictly after now")
	}
}

func TestRecentActivity_MergesAndCaps(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	task := testTask("t1", "task one", "", models.TaskTodo, models.PriorityLow)
	task.UpdatedAt = t0.Add(2 * time.Hour)

	bugNew := models.Bug{Title: "bug new", Status: models.BugNew}
	bugNew.ID = "b1"
	bugNew.UpdatedAt = t0.Add(3 * time.Hour)

	bugOld := models.Bug{Title: "bug old", Status: models.BugClosed}
	bugOld.ID = "b2"
	bugOld.UpdatedAt = t0

	got := RecentActivity([]models.Task{task}, []models.Bug{bugNew, bugOld}, 2)

	require.Len(t, got, 2)
	assert.Equal(t, Activity{Kind: ActivityBug, ID: "b1", Title: "bug new", Status: "new", UpdatedAt: bugNew.UpdatedAt}, got[0])
	assert.Equal(t, ActivityTask, got[1].Kind)
	assert.Equal(t, "t1", got[1].ID)
}

func TestRecentActivity_NonPositiveLimit(t *testing.T) {
	assert.Empty(t, RecentActivity([]models.Task{testTask("t1", "x", "", models.TaskTodo, models.PriorityLow)}, nil, 0))
}

func TestTasksByStatus(t *testing.T) {
	tasks := []models.Task{
		testTask("t1", "a", "", models.TaskTodo, models.PriorityLow),
		testTask("t2", "b", "", models.TaskDone, models.PriorityLow),
		testTask("t3", "c", "", models.TaskTodo, models.PriorityLow),
	}

	columns := TasksByStatus(tasks)

	require.Len(t, columns, len(BoardColumns))
	require.Len(t, columns[models.TaskTodo], 2)
	assert.Equal(t, "t1", columns[models.TaskTodo][0].ID)
	assert.Equal(t, "t3", columns[models.TaskTodo][1].ID)
	assert.Len(t, columns[models.TaskDone], 1)
	assert.Empty(t, columns[models.TaskInProgress])
}
