package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ovoronin/go-issue-tracker/internal/views"
	"github.com/ovoronin/go-issue-tracker/models"
)

// boardModel is the kanban cursor: the selected column and the selected
// row inside it. The tasks themselves live in the task store and are
// re-read on every render.
type boardModel struct {
	col     int
	row     int
	loading bool
}

func newBoardModel() boardModel {
	return boardModel{loading: true}
}

// currentTask returns the task under the cursor, if any.
func (m appModel) currentTask() (models.Task, bool) {
	columns := views.TasksByStatus(m.services.Tasks.Items())
	status := views.BoardColumns[m.board.col]
	tasks := columns[status]
	if m.board.row < 0 || m.board.row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.board.row], true
}

func (m *appModel) clampBoardCursor() {
	if m.board.col < 0 {
		m.board.col = 0
	}
	if m.board.col >= len(views.BoardColumns) {
		m.board.col = len(views.BoardColumns) - 1
	}

	columns := views.TasksByStatus(m.services.Tasks.Items())
	tasks := columns[views.BoardColumns[m.board.col]]
	if m.board.row >= len(tasks) {
		m.board.row = len(tasks) - 1
	}
	if m.board.row < 0 {
		m.board.row = 0
	}
}

func (m appModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.left):
		m.board.col--
		m.clampBoardCursor()
	case key.Matches(keyMsg, keys.right):
		m.board.col++
		m.clampBoardCursor()
	case key.Matches(keyMsg, keys.up):
		m.board.row--
		m.clampBoardCursor()
	case key.Matches(keyMsg, keys.down):
		m.board.row++
		m.clampBoardCursor()
	case key.Matches(keyMsg, keys.moveLeft):
		if task, ok := m.currentTask(); ok && m.board.col > 0 {
			return m, m.cmdMoveTask(task.ID, views.BoardColumns[m.board.col-1])
		}
	case key.Matches(keyMsg, keys.moveRight):
		if task, ok := m.currentTask(); ok && m.board.col < len(views.BoardColumns)-1 {
			return m, m.cmdMoveTask(task.ID, views.BoardColumns[m.board.col+1])
		}
	case key.Matches(keyMsg, keys.newItem):
		m.taskForm = newTaskFormModel(m.scopedProjectID(), m.user.UserID)
		m.currentScreen = screenTaskForm
		return m, m.taskForm.Init()
	case key.Matches(keyMsg, keys.attach):
		if task, ok := m.currentTask(); ok {
			m.attachments = newAttachmentsModel("task", task.ID, screenBoard)
			m.currentScreen = screenAttachments
		}
	case key.Matches(keyMsg, keys.delete):
		if task, ok := m.currentTask(); ok {
			m.showConfirm = true
			m.pendingDelete = deleteTarget{kind: "task", id: task.ID}
		}
	case key.Matches(keyMsg, keys.yank):
		if task, ok := m.currentTask(); ok {
			return m, cmdYank(fmt.Sprintf("%s %s", task.ID, task.Title))
		}
	case key.Matches(keyMsg, keys.refresh):
		m.board.loading = true
		return m, m.cmdLoadCollections()
	}

	return m, nil
}

func (m appModel) viewBoard() string {
	if m.board.loading {
		return renderPage("TASK BOARD", "Loading...", "esc: back")
	}

	columns := views.TasksByStatus(m.services.Tasks.Items())

	rendered := make([]string, 0, len(views.BoardColumns))
	for colIdx, status := range views.BoardColumns {
		tasks := columns[status]

		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", columnTitle(status), len(tasks))))
		b.WriteString("\n\n")

		if len(tasks) == 0 {
			b.WriteString(helpStyle.Render("empty"))
			b.WriteString("\n")
		}
		for rowIdx, task := range tasks {
			cursor := "  "
			if colIdx == m.board.col && rowIdx == m.board.row {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, fitText(task.Title, 18)))
			b.WriteString(fmt.Sprintf("  %s %s\n", helpStyle.Render(string(task.Priority)), helpStyle.Render(formatDate(task.DueDate))))
		}

		style := columnStyle
		if colIdx == m.board.col {
			style = activeColumnStyle
		}
		rendered = append(rendered, style.Render(strings.TrimRight(b.String(), "\n")))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	scope := "all projects"
	if projectID := m.scopedProjectID(); projectID != "" {
		scope = "project " + projectID
	}
	header := helpStyle.Render("Scope: " + scope)

	status := ""
	if m.status != "" {
		status = "\n" + m.status
	}

	return renderPage("TASK BOARD", header+"\n\n"+body+status,
		"h/l: column │ j/k: task │ [/]: move task │ n: new │ f: files │ d: delete │ c: copy │ r: refresh │ esc: back")
}

func (m appModel) scopedProjectID() string {
	return m.services.Tasks.Scope()["project_id"]
}

func columnTitle(status models.TaskStatus) string {
	switch status {
	case models.TaskTodo:
		return "To do"
	case models.TaskInProgress:
		return "In progress"
	case models.TaskReview:
		return "Review"
	case models.TaskDone:
		return "Done"
	case models.TaskCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}
