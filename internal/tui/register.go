package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovoronin/go-issue-tracker/models"
)

// registerFormModel is the account creation form: email, display name
// and password.
type registerFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterFormModel() registerFormModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 64
	emailInput.Width = 40
	emailInput.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "display name (optional)"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return registerFormModel{inputs: []textinput.Model{emailInput, nameInput, passwordInput}}
}

func (m registerFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.register.submitting = false
			m.register.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case "tab":
			m.register.focusNext()
			return m, nil
		case "shift+tab":
			m.register.focusPrev()
			return m, nil
		case "enter":
			if m.register.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.register.inputs[0].Value())
			name := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			if email == "" || pass == "" {
				m.register.errMsg = "email and password are required"
				return m, nil
			}

			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdSignUp(models.Credentials{Email: email, Password: pass, DisplayName: name})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m registerFormModel) View() string {
	var b strings.Builder
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Name     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *registerFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
