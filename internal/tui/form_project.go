package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// projectFormModel collects the fields of a new project. Priority is
// free text validated on submit; everything else the server defaults.
type projectFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProjectFormModel() projectFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "project name"
	nameInput.CharLimit = 80
	nameInput.Width = 40
	nameInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 256
	descriptionInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = "low / medium / high / critical"
	priorityInput.CharLimit = 16
	priorityInput.Width = 40

	return projectFormModel{inputs: []textinput.Model{nameInput, descriptionInput, priorityInput}}
}

func (m projectFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenProjects
			return m, nil
		case "tab":
			m.projectForm.focusNext()
			return m, nil
		case "shift+tab":
			m.projectForm.focusPrev()
			return m, nil
		case "enter":
			if m.projectForm.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.projectForm.inputs[0].Value())
			if name == "" {
				m.projectForm.errMsg = "name is required"
				return m, nil
			}
			priority, ok := parsePriority(m.projectForm.inputs[2].Value())
			if !ok {
				m.projectForm.errMsg = "priority must be one of: low, medium, high, critical"
				return m, nil
			}

			m.projectForm.errMsg = ""
			m.projectForm.submitting = true
			return m, m.cmdCreateProject(models.Project{
				Name:             name,
				Description:      strings.TrimSpace(m.projectForm.inputs[1].Value()),
				Status:           models.ProjectPlanning,
				Priority:         priority,
				ProjectManagerID: m.user.UserID,
				CreatedBy:        m.user.UserID,
			})
		}
	}

	var cmd tea.Cmd
	m.projectForm.inputs[m.projectForm.focus], cmd = m.projectForm.inputs[m.projectForm.focus].Update(msg)
	return m, cmd
}

func (m projectFormModel) View() string {
	var b strings.Builder
	b.WriteString("Name        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Description │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Priority    │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Create project]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW PROJECT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *projectFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *projectFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// parsePriority validates the free-text priority field. An empty value
// defaults to medium.
func parsePriority(raw string) (models.Priority, bool) {
	switch models.Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return models.PriorityMedium, true
	case models.PriorityLow:
		return models.PriorityLow, true
	case models.PriorityMedium:
		return models.PriorityMedium, true
	case models.PriorityHigh:
		return models.PriorityHigh, true
	case models.PriorityCritical:
		return models.PriorityCritical, true
	}
	return "", false
}
