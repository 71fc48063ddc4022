package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staletrack/internal/auth"
)

// loginView is the credential entry screen.
type loginView struct {
	app      *App
	username textinput.Model
	password textinput.Model
	focus    int // 0 = username, 1 = password
	errMsg   string
}

func newLoginView(app *App) *loginView {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "User     > "
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginView{app: app, username: username, password: password}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			v.toggleFocus()
			return nil
		case "enter":
			if v.focus == 0 {
				v.toggleFocus()
				return nil
			}
			v.submit()
			return nil
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return cmd
}

func (v *loginView) View() string {
	title := panelTitleStyle.Render("Sign in")
	lines := []string{
		title,
		"",
		v.username.View(),
		v.password.View(),
	}
	if v.errMsg != "" {
		lines = append(lines, "", statusOutdatedStyle.Render(v.errMsg))
	}
	form := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	hint := hintStyle.Render("Enter → sign in    Tab → switch field    Ctrl+C → quit")
	return lipgloss.JoinVertical(lipgloss.Left, form, hint)
}

func (v *loginView) toggleFocus() {
	if v.focus == 0 {
		v.focus = 1
		v.username.Blur()
		v.password.Focus()
	} else {
		v.focus = 0
		v.password.Blur()
		v.username.Focus()
	}
}

// submit verifies the entered credentials. On success the session is
// persisted and the matching role view is shown; on mismatch the error
// line is set and the user retries.
func (v *loginView) submit() {
	session, err := v.app.provider.Verify(v.username.Value(), v.password.Value())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			v.errMsg = "Invalid username or password."
		} else {
			v.errMsg = err.Error()
		}
		v.app.logWarn("Failed sign in attempt for %q", v.username.Value())
		return
	}
	if err := v.app.store.SaveSession(session); err != nil {
		v.errMsg = err.Error()
		return
	}
	v.app.logInfo("Signed in %s (%s)", session.User, session.Role)
	v.reset()
	v.app.enterRole(session)
}

// reset clears any in-progress credential input.
func (v *loginView) reset() {
	v.username.Reset()
	v.password.Reset()
	v.errMsg = ""
	if v.focus == 1 {
		v.toggleFocus()
	}
}
