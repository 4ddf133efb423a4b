package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/internal/views"
	"github.com/ovoronin/go-issue-tracker/models"
)

var (
	projectStatusBuckets = []string{
		string(models.ProjectPlanning),
		string(models.ProjectActive),
		string(models.ProjectOnHold),
		string(models.ProjectCompleted),
		string(models.ProjectCancelled),
	}
	taskStatusBuckets = []string{
		string(models.TaskTodo),
		string(models.TaskInProgress),
		string(models.TaskReview),
		string(models.TaskDone),
		string(models.TaskCancelled),
	}
	bugSeverityBuckets = []string{
		string(models.SeverityTrivial),
		string(models.SeverityMinor),
		string(models.SeverityMajor),
		string(models.SeverityCritical),
		string(models.SeverityBlocker),
	}
)

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadCollections()
	}

	return m, nil
}

func (m appModel) viewDashboard() string {
	projects := m.services.Projects.Items()
	tasks := m.services.Tasks.Items()
	bugs := m.services.Bugs.Items()

	var b strings.Builder

	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n")
	writeCounts(&b, views.GroupCounts(projects, views.ProjectField, "status", projectStatusBuckets))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")
	writeCounts(&b, views.GroupCounts(tasks, views.TaskField, "status", taskStatusBuckets))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Bugs by severity"))
	b.WriteString("\n")
	writeCounts(&b, views.GroupCounts(bugs, views.BugField, "severity", bugSeverityBuckets))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Upcoming deadlines"))
	b.WriteString("\n")
	upcoming := views.UpcomingDeadlines(tasks, time.Now())
	if len(upcoming) == 0 {
		b.WriteString(helpStyle.Render("nothing due"))
		b.WriteString("\n")
	}
	for _, task := range upcoming {
		b.WriteString(fmt.Sprintf("%-34s %s\n", fitText(task.Title, 34), formatDate(task.DueDate)))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent activity"))
	b.WriteString("\n")
	activity := views.RecentActivity(tasks, bugs, 10)
	if len(activity) == 0 {
		b.WriteString(helpStyle.Render("no activity"))
		b.WriteString("\n")
	}
	for _, a := range activity {
		b.WriteString(fmt.Sprintf("[%s] %-30s %-12s %s\n",
			a.Kind, fitText(a.Title, 30), a.Status, a.UpdatedAt.Format("01-02 15:04")))
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func writeCounts(b *strings.Builder, counts []views.GroupCount) {
	for _, c := range counts {
		b.WriteString(fmt.Sprintf("%-14s %d\n", c.Label, c.Count))
	}
}
