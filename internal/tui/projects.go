package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type projectsModel struct {
	idx int
}

func newProjectsModel() projectsModel {
	return projectsModel{}
}

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.services.Projects.Items()

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.projects.idx > 0 {
			m.projects.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.projects.idx < len(items)-1 {
			m.projects.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.projects.idx < len(items) {
			m.currentScreen = screenBoard
			m.board.loading = true
			return m, m.cmdScopeToProject(items[m.projects.idx].ID)
		}
	case key.Matches(keyMsg, keys.allScope):
		m.currentScreen = screenBoard
		m.board.loading = true
		return m, m.cmdScopeToProject("")
	case key.Matches(keyMsg, keys.newItem):
		m.projectForm = newProjectFormModel()
		m.currentScreen = screenProjectForm
		return m, m.projectForm.Init()
	case key.Matches(keyMsg, keys.delete):
		if m.projects.idx < len(items) {
			m.showConfirm = true
			m.pendingDelete = deleteTarget{kind: "project", id: items[m.projects.idx].ID}
		}
	case key.Matches(keyMsg, keys.yank):
		if m.projects.idx < len(items) {
			return m, cmdYank(items[m.projects.idx].ID)
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadCollections()
	}

	return m, nil
}

func (m appModel) viewProjects() string {
	items := m.services.Projects.Items()

	var b strings.Builder
	if m.services.Projects.Loading() {
		b.WriteString("Loading...\n")
	} else if len(items) == 0 {
		b.WriteString("No projects yet\n")
	} else {
		for i, p := range items {
			cursor := "  "
			if i == m.projects.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-28s %-10s %-8s %3d%%\n",
				cursor, fitText(p.Name, 28), p.Status, p.Priority, p.Progress))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PROJECTS", strings.TrimRight(b.String(), "\n"),
		"enter: open board │ A: all tasks │ n: new │ d: delete │ c: copy id │ r: refresh │ esc: back")
}
