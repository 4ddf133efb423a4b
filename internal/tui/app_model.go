package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenDashboard
	screenProjects
	screenBoard
	screenBugs
	screenNotifications
	screenProjectForm
	screenTaskForm
	screenBugForm
	screenAttachments
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// deleteTarget identifies the entity a pending delete confirmation is
// about.
type deleteTarget struct {
	kind string // "project", "task" or "bug"
	id   string
}

// appModel is the single Bubble Tea model of the client. It routes
// messages to the active screen's sub-model and owns the cross-screen
// state: the signed-in user, overlays and the logout flag.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	mode     appMode

	currentScreen screen

	welcome       welcomeModel
	login         loginFormModel
	register      registerFormModel
	menu          menuModel
	projects      projectsModel
	board         boardModel
	bugs          bugsModel
	notifications notificationsModel
	projectForm   projectFormModel
	taskForm      taskFormModel
	bugForm       bugFormModel
	attachments   attachmentsModel

	user models.User

	showError     bool
	errorMessage  string
	showConfirm   bool
	pendingDelete deleteTarget

	status     string
	logout     bool
	resultUser models.User
	quitByUser bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginFormModel(),
		register:      newRegisterFormModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, user models.User) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.user = user
	m.currentScreen = screenMenu
	m.menu = newMenuModel()
	m.projects = newProjectsModel()
	m.board = newBoardModel()
	m.bugs = newBugsModel()
	m.notifications = newNotificationsModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadCollections()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorMessage = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				target := m.pendingDelete
				m.pendingDelete = deleteTarget{}
				return m, m.cmdDeleteEntity(target)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = deleteTarget{}
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

	case authDoneMsg:
		if msg.err != nil {
			m.setFormError(msg.err)
			return m, nil
		}
		m.resultUser = msg.user
		return m, tea.Quit

	case collectionsLoadedMsg:
		m.board.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		return m, nil

	case entitySavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.currentScreen = m.afterFormScreen()
		m.status = "Saved"
		return m, cmdClearStatus()

	case entityDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = "Deleted"
		return m, cmdClearStatus()

	case notificationsChangedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		return m, nil

	case attachmentsChangedMsg:
		m.attachments.uploading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = "Attachments updated"
		if msg.failed > 0 {
			m.status = fmt.Sprintf("Attachments updated, %d rejected", msg.failed)
		}
		return m, cmdClearStatus()

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenBoard:
		return m.updateBoard(msg)
	case screenBugs:
		return m.updateBugs(msg)
	case screenNotifications:
		return m.updateNotifications(msg)
	case screenProjectForm:
		return m.updateProjectForm(msg)
	case screenTaskForm:
		return m.updateTaskForm(msg)
	case screenBugForm:
		return m.updateBugForm(msg)
	case screenAttachments:
		return m.updateAttachments(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showError {
		return renderErrorOverlay(m.errorMessage)
	}
	if m.showConfirm {
		return renderConfirmOverlay(m.pendingDelete)
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.welcome.View()
	case screenLogin:
		return m.login.View()
	case screenRegister:
		return m.register.View()
	case screenMenu:
		return m.menu.View(m.user, m.services.Notifications.UnreadCount(), m.status)
	case screenDashboard:
		return m.viewDashboard()
	case screenProjects:
		return m.viewProjects()
	case screenBoard:
		return m.viewBoard()
	case screenBugs:
		return m.viewBugs()
	case screenNotifications:
		return m.viewNotifications()
	case screenProjectForm:
		return m.projectForm.View()
	case screenTaskForm:
		return m.taskForm.View()
	case screenBugForm:
		return m.bugForm.View()
	case screenAttachments:
		return m.viewAttachments()
	}

	return ""
}

// afterFormScreen is where a submitted form returns to.
func (m appModel) afterFormScreen() screen {
	switch m.currentScreen {
	case screenProjectForm:
		return screenProjects
	case screenTaskForm:
		return screenBoard
	case screenBugForm:
		return screenBugs
	default:
		return screenMenu
	}
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorMessage = err.Error()
}

// setFormError routes an authentication failure to whichever form is
// currently submitting.
func (m *appModel) setFormError(err error) {
	switch m.currentScreen {
	case screenLogin:
		m.login.submitting = false
		m.login.errMsg = err.Error()
	case screenRegister:
		m.register.submitting = false
		m.register.errMsg = err.Error()
	}
}
