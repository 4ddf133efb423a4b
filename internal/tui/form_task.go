package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// taskFormModel collects the fields of a new task. The project the
// task lands in and the reporter are fixed when the form opens.
type taskFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	projectID  string
	reporterID string
}

func newTaskFormModel(projectID, reporterID string) taskFormModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "task title"
	titleInput.CharLimit = 120
	titleInput.Width = 40
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 256
	descriptionInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = "low / medium / high / critical"
	priorityInput.CharLimit = 16
	priorityInput.Width = 40

	projectInput := textinput.New()
	projectInput.Placeholder = "project id"
	projectInput.CharLimit = 64
	projectInput.Width = 40
	projectInput.SetValue(projectID)

	dueInput := textinput.New()
	dueInput.Placeholder = "due date YYYY-MM-DD (optional)"
	dueInput.CharLimit = 10
	dueInput.Width = 40

	return taskFormModel{
		inputs:     []textinput.Model{titleInput, descriptionInput, priorityInput, projectInput, dueInput},
		projectID:  projectID,
		reporterID: reporterID,
	}
}

func (m taskFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenBoard
			return m, nil
		case "tab":
			m.taskForm.focusNext()
			return m, nil
		case "shift+tab":
			m.taskForm.focusPrev()
			return m, nil
		case "enter":
			if m.taskForm.submitting {
				return m, nil
			}

			title := strings.TrimSpace(m.taskForm.inputs[0].Value())
			projectID := strings.TrimSpace(m.taskForm.inputs[3].Value())
			if title == "" || projectID == "" {
				m.taskForm.errMsg = "title and project id are required"
				return m, nil
			}
			priority, ok := parsePriority(m.taskForm.inputs[2].Value())
			if !ok {
				m.taskForm.errMsg = "priority must be one of: low, medium, high, critical"
				return m, nil
			}
			dueDate, ok := parseDueDate(m.taskForm.inputs[4].Value())
			if !ok {
				m.taskForm.errMsg = "due date must look like 2026-12-31"
				return m, nil
			}

			m.taskForm.errMsg = ""
			m.taskForm.submitting = true
			return m, m.cmdCreateTask(models.Task{
				Title:       title,
				Description: strings.TrimSpace(m.taskForm.inputs[1].Value()),
				Status:      models.TaskTodo,
				Priority:    priority,
				TaskType:    models.TaskFeature,
				ProjectID:   projectID,
				ReporterID:  m.taskForm.reporterID,
				DueDate:     dueDate,
				CreatedBy:   m.taskForm.reporterID,
			})
		}
	}

	var cmd tea.Cmd
	m.taskForm.inputs[m.taskForm.focus], cmd = m.taskForm.inputs[m.taskForm.focus].Update(msg)
	return m, cmd
}

func (m taskFormModel) View() string {
	labels := []string{"Title      ", "Description", "Priority   ", "Project    ", "Due date   "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Create task]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW TASK", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *taskFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *taskFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// parseDueDate parses an optional YYYY-MM-DD field. Empty means no
// deadline.
func parseDueDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	due, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &due, true
}
