package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type notificationsModel struct {
	idx int
}

func newNotificationsModel() notificationsModel {
	return notificationsModel{}
}

func (m appModel) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.services.Notifications.Items()

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.notifications.idx > 0 {
			m.notifications.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.notifications.idx < len(items)-1 {
			m.notifications.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.notifications.idx < len(items) && !items[m.notifications.idx].IsRead {
			return m, m.cmdMarkRead(items[m.notifications.idx].ID)
		}
	case key.Matches(keyMsg, keys.markAll):
		return m, m.cmdMarkAllRead()
	case key.Matches(keyMsg, keys.delete):
		if m.notifications.idx < len(items) {
			return m, m.cmdDeleteNotification(items[m.notifications.idx].ID)
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadCollections()
	}

	return m, nil
}

func (m appModel) viewNotifications() string {
	items := m.services.Notifications.Items()

	var b strings.Builder
	if m.services.Notifications.Loading() {
		b.WriteString("Loading...\n")
	} else if len(items) == 0 {
		b.WriteString("No notifications\n")
	} else {
		for i, n := range items {
			cursor := "  "
			if i == m.notifications.idx {
				cursor = "> "
			}

			marker := " "
			line := fmt.Sprintf("%-36s %s", fitText(n.Title, 36), helpStyle.Render(string(n.Type)))
			if !n.IsRead {
				marker = "●"
				line = unreadStyle.Render(line)
			}

			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, line))
		}
	}

	unread := m.services.Notifications.UnreadCount()
	b.WriteString(fmt.Sprintf("\n%d unread\n", unread))

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"),
		"enter: mark read │ a: mark all read │ d: delete │ r: refresh │ esc: back")
}
