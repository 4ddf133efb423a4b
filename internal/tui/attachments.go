package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// attachmentsModel manages the attachment list of one task or bug. The
// descriptors themselves live on the cached entity; this screen only
// keeps the cursor and the file-path prompt.
type attachmentsModel struct {
	kind     string // "task" or "bug"
	entityID string
	back     screen

	idx       int
	prompting bool
	uploading bool
	input     textinput.Model
}

func newAttachmentsModel(kind, entityID string, back screen) attachmentsModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "path to file"
	pathInput.CharLimit = 256
	pathInput.Width = 48

	return attachmentsModel{
		kind:     kind,
		entityID: entityID,
		back:     back,
		input:    pathInput,
	}
}

// currentAttachments reads the descriptor list off the cached entity.
func (m appModel) currentAttachments() []models.Attachment {
	switch m.attachments.kind {
	case "task":
		if task, ok := m.services.Tasks.Find(m.attachments.entityID); ok {
			return task.Attachments
		}
	case "bug":
		if bug, ok := m.services.Bugs.Find(m.attachments.entityID); ok {
			return bug.Attachments
		}
	}
	return nil
}

func (m appModel) updateAttachments(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.attachments.prompting {
		switch keyMsg.String() {
		case "esc":
			m.attachments.prompting = false
			m.attachments.input.Reset()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.attachments.input.Value())
			if path == "" {
				return m, nil
			}
			m.attachments.prompting = false
			m.attachments.uploading = true
			m.attachments.input.Reset()
			return m, m.cmdUploadAttachment(m.attachments.kind, m.attachments.entityID, path)
		}

		var cmd tea.Cmd
		m.attachments.input, cmd = m.attachments.input.Update(msg)
		return m, cmd
	}

	items := m.currentAttachments()

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.attachments.back
	case key.Matches(keyMsg, keys.up):
		if m.attachments.idx > 0 {
			m.attachments.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.attachments.idx < len(items)-1 {
			m.attachments.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.attachments.prompting = true
		m.attachments.input.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if m.attachments.idx < len(items) {
			return m, m.cmdRemoveAttachment(m.attachments.kind, m.attachments.entityID, items[m.attachments.idx].AttachmentID)
		}
	case key.Matches(keyMsg, keys.yank):
		if m.attachments.idx < len(items) {
			return m, cmdYank(items[m.attachments.idx].URL)
		}
	}

	return m, nil
}

func (m appModel) viewAttachments() string {
	items := m.currentAttachments()

	var b strings.Builder
	if len(items) == 0 {
		b.WriteString("No attachments\n")
	} else {
		for i, att := range items {
			cursor := "  "
			if i == m.attachments.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-32s %s\n",
				cursor, fitText(att.Filename, 32), helpStyle.Render(att.UploadedAt.Format("2006-01-02"))))
		}
	}

	if m.attachments.prompting {
		b.WriteString("\nFile │ [")
		b.WriteString(m.attachments.input.View())
		b.WriteString("]\n")
	} else if m.attachments.uploading {
		b.WriteString("\n[Uploading...]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	title := fmt.Sprintf("ATTACHMENTS: %s %s", strings.ToUpper(m.attachments.kind), m.attachments.entityID)
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"n: upload file │ d: remove │ c: copy url │ esc: back")
}
