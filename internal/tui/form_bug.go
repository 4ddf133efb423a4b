package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// bugFormModel collects the fields of a new bug report.
type bugFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	projectID  string
	reporterID string
}

func newBugFormModel(projectID, reporterID string) bugFormModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "bug title"
	titleInput.CharLimit = 120
	titleInput.Width = 40
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 256
	descriptionInput.Width = 40

	severityInput := textinput.New()
	severityInput.Placeholder = "trivial / minor / major / critical / blocker"
	severityInput.CharLimit = 16
	severityInput.Width = 40

	projectInput := textinput.New()
	projectInput.Placeholder = "project id"
	projectInput.CharLimit = 64
	projectInput.Width = 40
	projectInput.SetValue(projectID)

	stepsInput := textinput.New()
	stepsInput.Placeholder = "steps to reproduce (optional)"
	stepsInput.CharLimit = 256
	stepsInput.Width = 40

	return bugFormModel{
		inputs:     []textinput.Model{titleInput, descriptionInput, severityInput, projectInput, stepsInput},
		projectID:  projectID,
		reporterID: reporterID,
	}
}

func (m bugFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) updateBugForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenBugs
			return m, nil
		case "tab":
			m.bugForm.focusNext()
			return m, nil
		case "shift+tab":
			m.bugForm.focusPrev()
			return m, nil
		case "enter":
			if m.bugForm.submitting {
				return m, nil
			}

			title := strings.TrimSpace(m.bugForm.inputs[0].Value())
			projectID := strings.TrimSpace(m.bugForm.inputs[3].Value())
			if title == "" || projectID == "" {
				m.bugForm.errMsg = "title and project id are required"
				return m, nil
			}
			severity, ok := parseSeverity(m.bugForm.inputs[2].Value())
			if !ok {
				m.bugForm.errMsg = "severity must be one of: trivial, minor, major, critical, blocker"
				return m, nil
			}

			m.bugForm.errMsg = ""
			m.bugForm.submitting = true
			return m, m.cmdCreateBug(models.Bug{
				Title:            title,
				Description:      strings.TrimSpace(m.bugForm.inputs[1].Value()),
				Severity:         severity,
				Priority:         models.PriorityMedium,
				Status:           models.BugNew,
				ProjectID:        projectID,
				ReporterID:       m.bugForm.reporterID,
				StepsToReproduce: strings.TrimSpace(m.bugForm.inputs[4].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.bugForm.inputs[m.bugForm.focus], cmd = m.bugForm.inputs[m.bugForm.focus].Update(msg)
	return m, cmd
}

func (m bugFormModel) View() string {
	labels := []string{"Title      ", "Description", "Severity   ", "Project    ", "Steps      "}

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
		b.WriteString("\n[Report bug]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW BUG", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *bugFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *bugFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// parseSeverity validates the free-text severity field. An empty value
// defaults to minor.
func parseSeverity(raw string) (models.BugSeverity, bool) {
	switch models.BugSeverity(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return models.SeverityMinor, true
	case models.SeverityTrivial:
		return models.SeverityTrivial, true
	case models.SeverityMinor:
		return models.SeverityMinor, true
	case models.SeverityMajor:
		return models.SeverityMajor, true
	case models.SeverityCritical:
		return models.SeverityCritical, true
	case models.SeverityBlocker:
		return models.SeverityBlocker, true
	}
	return "", false
}
