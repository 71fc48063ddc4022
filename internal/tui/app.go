// internal/tui/app.go
//
// The main TUI for staletrack, following The Elm Architecture via
// bubbletea: the App model holds all state, Update reacts to messages,
// View renders the active screen. Exactly one of the login, checker or
// reviewer screens is visible at any time.

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staletrack/internal/article"
	"staletrack/internal/auth"
	"staletrack/internal/config"
	"staletrack/internal/draft"
	"staletrack/internal/logbook"
	"staletrack/internal/review"
	"staletrack/internal/store"
)

// appState represents which screen we're on.
type appState int

const (
	stateLogin    appState = iota // credential entry
	stateChecker                  // article staleness + drafting
	stateReviewer                 // pending draft queue + decisions
)

const logTailLines = 4

// AppOption customizes App construction for tests and alternate
// runtimes.
type AppOption func(*App)

// WithClock overrides the wall clock used for staleness evaluation,
// draft timestamps and publish dates.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithAuthProvider overrides the credential provider.
func WithAuthProvider(provider auth.Provider) AppOption {
	return func(a *App) {
		if provider != nil {
			a.provider = provider
		}
	}
}

// App is the main application model.
type App struct {
	state    appState
	config   *config.Config
	store    *store.Store
	provider auth.Provider
	logbook  *logbook.Logbook
	now      func() time.Time

	evaluator *article.Evaluator
	drafts    *draft.Service
	reviews   *review.Service

	session  auth.Session
	signedIn bool

	login    *loginView
	checker  *checkerView
	reviewer *reviewerView

	width  int
	height int

	statusMsg string
}

// NewApp creates the application model. If a persisted session exists
// it routes straight to the matching role view, bypassing credential
// entry; otherwise the login screen is shown.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	st := store.New(cfg)
	lb, err := logbook.Open(cfg.ActivityLogPath())
	if err != nil {
		lb = nil
	}

	app := &App{
		state:    stateLogin,
		config:   cfg,
		store:    st,
		provider: auth.NewStatic(cfg.Credentials(), cfg.Reviewer()),
		logbook:  lb,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	app.evaluator = article.NewEvaluator(st, app.now)
	app.drafts = draft.NewService(st, app.now)
	app.reviews = review.NewService(st, app.now)
	app.login = newLoginView(app)

	if session, ok := st.LoadSession(); ok {
		app.logInfo("Session restored for %s (%s)", session.User, session.Role)
		app.enterRole(session)
	} else {
		app.logInfo("Session opened · awaiting sign in")
	}
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	if a.state == stateLogin {
		return a.login.Init()
	}
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.checker != nil {
			a.checker.setSize(msg.Width, msg.Height)
		}
		if a.reviewer != nil {
			a.reviewer.setSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.signedIn {
				a.logout()
				return a, a.login.Init()
			}
		}
	}

	switch a.state {
	case stateLogin:
		return a, a.login.Update(msg)
	case stateChecker:
		return a, a.checker.Update(msg)
	case stateReviewer:
		return a, a.reviewer.Update(msg)
	}
	return a, nil
}

// View renders the active screen with the shared header and footer.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateLogin:
		content = a.login.View()
	case stateChecker:
		content = a.checker.View()
	case stateReviewer:
		content = a.reviewer.View()
	}

	sections := []string{headerStyle.Render("⊙ STALETRACK"), content}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	if a.statusMsg != "" {
		sections = append(sections, footerStyle.Render(a.statusMsg))
	}
	return strings.Join(sections, "\n")
}

// enterRole installs the session and builds the matching role view.
func (a *App) enterRole(session auth.Session) {
	a.session = session
	a.signedIn = true
	a.statusMsg = ""
	switch session.Role {
	case auth.RoleReviewer:
		a.reviewer = newReviewerView(a)
		a.checker = nil
		a.state = stateReviewer
	default:
		a.checker = newCheckerView(a)
		a.reviewer = nil
		a.state = stateChecker
	}
	if a.width > 0 && a.height > 0 {
		if a.checker != nil {
			a.checker.setSize(a.width, a.height)
		}
		if a.reviewer != nil {
			a.reviewer.setSize(a.width, a.height)
		}
	}
}

// logout clears the persisted session and returns to the login screen
// unconditionally, dropping any in-progress credential input.
func (a *App) logout() {
	if err := a.store.ClearSession(); err != nil {
		a.logError("Clear session: %v", err)
	}
	a.logInfo("Signed out %s", a.session.User)
	a.session = auth.Session{}
	a.signedIn = false
	a.checker = nil
	a.reviewer = nil
	a.login.reset()
	a.statusMsg = ""
	a.state = stateLogin
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(logTailLines)
	if len(lines) == 0 {
		return ""
	}
	head := panelTitleStyle.Render("ACTIVITY")
	body := logTextStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
