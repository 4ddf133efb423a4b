package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{items: []string{
		"Dashboard",
		"Projects",
		"Task board",
		"Bugs",
		"Notifications",
	}}
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenDashboard
		case 1:
			m.currentScreen = screenProjects
		case 2:
			m.currentScreen = screenBoard
		case 3:
			m.currentScreen = screenBugs
		case 4:
			m.currentScreen = screenNotifications
		}
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.board.loading = true
		return m, m.cmdLoadCollections()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m menuModel) View(user models.User, unread int, status string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Signed in as %s\n\n", user.DisplayName))

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		label := item
		if item == "Notifications" && unread > 0 {
			label = fmt.Sprintf("%s (%d unread)", item, unread)
		}
		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	return renderPage("ISSUE TRACKER", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: open │ r: refresh │ L: logout │ q: quit")
}
