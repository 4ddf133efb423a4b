package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/models"
)

const statusDisplayDuration = 2 * time.Second

func (m appModel) cmdSignIn(creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.Session.SignIn(m.ctx, creds)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignUp(creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.Session.SignUp(m.ctx, creds)
		return authDoneMsg{user: user, err: err}
	}
}

// cmdLoadCollections re-fetches every collection the main screens read
// from. The first failure wins; later fetches still run so the other
// collections stay fresh.
func (m appModel) cmdLoadCollections() tea.Cmd {
	return func() tea.Msg {
		var firstErr error
		for _, fetch := range []func() error{
			func() error { return m.services.Projects.FetchAll(m.ctx) },
			func() error { return m.services.Tasks.FetchAll(m.ctx) },
			func() error { return m.services.Bugs.FetchAll(m.ctx) },
			func() error { return m.services.Notifications.FetchAll(m.ctx) },
		} {
			if err := fetch(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return collectionsLoadedMsg{err: firstErr}
	}
}

// cmdScopeToProject narrows the task and bug stores to one project, or
// widens them back to all projects when projectID is empty.
func (m appModel) cmdScopeToProject(projectID string) tea.Cmd {
	return func() tea.Msg {
		var scope map[string]string
		if projectID != "" {
			scope = map[string]string{"project_id": projectID}
		}

		if err := m.services.Tasks.SetScope(m.ctx, scope); err != nil {
			return collectionsLoadedMsg{err: err}
		}
		err := m.services.Bugs.SetScope(m.ctx, scope)
		return collectionsLoadedMsg{err: err}
	}
}

func (m appModel) cmdCreateProject(draft models.Project) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Projects.Create(m.ctx, draft)
		return entitySavedMsg{err: err}
	}
}

func (m appModel) cmdCreateTask(draft models.Task) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Tasks.Create(m.ctx, draft)
		return entitySavedMsg{err: err}
	}
}

func (m appModel) cmdCreateBug(draft models.Bug) tea.Cmd {
	return func() tea.Msg {
		created, err := m.services.Bugs.Create(m.ctx, draft)
		if err != nil {
			return entitySavedMsg{err: err}
		}
		m.notifyBugReported(created)
		return entitySavedMsg{}
	}
}

// notifyBugReported tells the project's manager about a new report.
// Best effort: the bug is already saved, so a failed notification is
// never surfaced as a form error. The email leg only fires when the
// manager is the signed-in user, the one address the client knows.
func (m appModel) notifyBugReported(bug models.Bug) {
	project, ok := m.services.Projects.Find(bug.ProjectID)
	if !ok || project.ProjectManagerID == "" {
		return
	}

	email := ""
	if project.ProjectManagerID == m.user.UserID {
		email = m.user.Email
	}

	_, _ = m.services.Notifications.Notify(m.ctx, models.Notification{
		Title:       "Bug reported: " + bug.Title,
		Message:     fmt.Sprintf("A %s severity bug was reported in %s", bug.Severity, project.Name),
		Type:        models.NotifyBugReported,
		RecipientID: project.ProjectManagerID,
		SenderID:    bug.ReporterID,
		LinkedType:  "bug",
		LinkedID:    bug.ID,
	}, email)
}

func (m appModel) cmdMoveTask(id string, status models.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Tasks.Update(m.ctx, id, models.Patch{"status": status})
		return entitySavedMsg{err: err}
	}
}

func (m appModel) cmdAdvanceBug(id string, status models.BugStatus) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Bugs.Update(m.ctx, id, models.Patch{"status": status})
		return entitySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntity(target deleteTarget) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch target.kind {
		case "project":
			err = m.services.Projects.Delete(m.ctx, target.id)
		case "task":
			err = m.services.Tasks.Delete(m.ctx, target.id)
		case "bug":
			err = m.services.Bugs.Delete(m.ctx, target.id)
		}
		return entityDeletedMsg{err: err}
	}
}

// cmdUploadAttachment reads one local file and attaches it through the
// entity's attachment service.
func (m appModel) cmdUploadAttachment(kind, entityID, path string) tea.Cmd {
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return attachmentsChangedMsg{err: err}
		}
		files := []models.FileUpload{{Name: filepath.Base(path), Content: content}}

		var report service.UploadReport
		switch kind {
		case "task":
			report, err = m.services.TaskAttachments.Upload(m.ctx, entityID, files)
		case "bug":
			report, err = m.services.BugAttachments.Upload(m.ctx, entityID, files)
		}
		return attachmentsChangedMsg{failed: report.Failed, err: err}
	}
}

func (m appModel) cmdRemoveAttachment(kind, entityID, attachmentID string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch kind {
		case "task":
			err = m.services.TaskAttachments.Remove(m.ctx, entityID, attachmentID)
		case "bug":
			err = m.services.BugAttachments.Remove(m.ctx, entityID, attachmentID)
		}
		return attachmentsChangedMsg{err: err}
	}
}

func (m appModel) cmdMarkRead(id string) tea.Cmd {
	return func() tea.Msg {
		return notificationsChangedMsg{err: m.services.Notifications.MarkRead(m.ctx, id)}
	}
}

func (m appModel) cmdMarkAllRead() tea.Cmd {
	return func() tea.Msg {
		return notificationsChangedMsg{err: m.services.Notifications.MarkAllRead(m.ctx)}
	}
}

func (m appModel) cmdDeleteNotification(id string) tea.Cmd {
	return func() tea.Msg {
		return notificationsChangedMsg{err: m.services.Notifications.Delete(m.ctx, id)}
	}
}

// cmdYank copies text to the system clipboard. Clipboard failures are
// silently ignored; there is nothing useful to tell the user.
func cmdYank(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
