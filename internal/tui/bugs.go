package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// nextBugStatus is the happy path of the defect workflow; closed and
// cancelled states have no next step.
func nextBugStatus(status models.BugStatus) (models.BugStatus, bool) {
	switch status {
	case models.BugNew:
		return models.BugOpen, true
	case models.BugOpen, models.BugReopened:
		return models.BugInProgress, true
	case models.BugInProgress:
		return models.BugFixed, true
	case models.BugFixed:
		return models.BugVerified, true
	case models.BugVerified:
		return models.BugClosed, true
	default:
		return status, false
	}
}

type bugsModel struct {
	idx int
}

func newBugsModel() bugsModel {
	return bugsModel{}
}

func (m appModel) updateBugs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.services.Bugs.Items()

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.bugs.idx > 0 {
			m.bugs.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.bugs.idx < len(items)-1 {
			m.bugs.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		// advance the defect workflow one step
		if m.bugs.idx < len(items) {
			bug := items[m.bugs.idx]
			if next, ok := nextBugStatus(bug.Status); ok {
				return m, m.cmdAdvanceBug(bug.ID, next)
			}
		}
	case key.Matches(keyMsg, keys.newItem):
		m.bugForm = newBugFormModel(m.scopedProjectID(), m.user.UserID)
		m.currentScreen = screenBugForm
		return m, m.bugForm.Init()
	case key.Matches(keyMsg, keys.attach):
		if m.bugs.idx < len(items) {
			m.attachments = newAttachmentsModel("bug", items[m.bugs.idx].ID, screenBugs)
			m.currentScreen = screenAttachments
		}
	case key.Matches(keyMsg, keys.delete):
		if m.bugs.idx < len(items) {
			m.showConfirm = true
			m.pendingDelete = deleteTarget{kind: "bug", id: items[m.bugs.idx].ID}
		}
	case key.Matches(keyMsg, keys.yank):
		if m.bugs.idx < len(items) {
			bug := items[m.bugs.idx]
			return m, cmdYank(fmt.Sprintf("%s %s", bug.ID, bug.Title))
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadCollections()
	}

	return m, nil
}

func (m appModel) viewBugs() string {
	items := m.services.Bugs.Items()

	var b strings.Builder
	if m.services.Bugs.Loading() {
		b.WriteString("Loading...\n")
	} else if len(items) == 0 {
		b.WriteString("No bugs reported\n")
	} else {
		for i, bug := range items {
			cursor := "  "
			if i == m.bugs.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %-9s %-11s %s\n",
				cursor, fitText(bug.Title, 30), bug.Severity, bug.Status, helpStyle.Render(orDash(bug.AssignedTo))))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("BUGS", strings.TrimRight(b.String(), "\n"),
		"enter: advance status │ n: new │ f: files │ d: delete │ c: copy │ r: refresh │ esc: back")
}
