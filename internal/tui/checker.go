package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staletrack/internal/article"
	"staletrack/internal/draft"
)

// titleItem implements list.Item for the article selector.
type titleItem struct {
	title string
	date  string
}

func (i titleItem) Title() string       { return i.title }
func (i titleItem) Description() string { return fmt.Sprintf("dated %s", i.date) }
func (i titleItem) FilterValue() string { return i.title }

// checkerView is the article staleness screen: a title selector on the
// left, the evaluated status and (when applicable) the drafting form on
// the right.
type checkerView struct {
	app    *App
	titles list.Model
	editor textarea.Model

	view        article.View
	lastTitle   string
	focusEditor bool
	// suggestUsed disables the canned-suggestion action after one use
	// per form instance. Resets when the selection changes.
	suggestUsed  bool
	notice       string
	noticeStatus article.Status
}

func newCheckerView(app *App) *checkerView {
	titles := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	titles.Title = "Articles"
	titles.SetShowStatusBar(false)
	titles.SetFilteringEnabled(false)

	editor := textarea.New()
	editor.Placeholder = "Enter the replacement content here, or generate a suggestion."
	editor.CharLimit = 0
	editor.SetHeight(8)

	v := &checkerView{app: app, titles: titles, editor: editor}
	v.refreshTitles()
	v.view, _ = app.evaluator.Evaluate("")
	return v
}

// refreshTitles repopulates the selector from the current article keys.
func (v *checkerView) refreshTitles() {
	dates, err := v.app.store.LoadArticles()
	if err != nil {
		v.app.statusMsg = err.Error()
		return
	}
	titles := dates.Titles()
	items := make([]list.Item, 0, len(titles))
	for _, title := range titles {
		items = append(items, titleItem{title: title, date: dates[title]})
	}
	v.titles.SetItems(items)
}

func (v *checkerView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if !v.focusEditor {
				v.selectCurrent()
				return nil
			}
		case "tab":
			if v.view.CanDraft() {
				return v.toggleEditor()
			}
			return nil
		case "esc":
			if v.focusEditor {
				v.blurEditor()
			}
			return nil
		case "ctrl+g":
			return v.suggest()
		case "ctrl+s":
			v.submit()
			return nil
		}
	}

	var cmd tea.Cmd
	if v.focusEditor {
		v.editor, cmd = v.editor.Update(msg)
		return cmd
	}
	v.titles, cmd = v.titles.Update(msg)
	return cmd
}

func (v *checkerView) View() string {
	width := v.app.width
	if width <= 0 {
		width = 100
	}
	leftWidth := width / 2
	rightWidth := width - leftWidth - 4

	left := panelStyle.Width(max(30, leftWidth)).Render(v.titles.View())
	right := panelStyle.Width(max(30, rightWidth)).Render(v.renderStatusPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, body, hintStyle.Render(v.hints()))
}

func (v *checkerView) renderStatusPanel() string {
	lines := []string{
		panelTitleStyle.Render(fmt.Sprintf("Status · %s", v.app.session.User)),
		"",
		statusStyle(v.view.Status).Render(v.view.Message),
	}

	if v.view.Status == article.StatusOutdated {
		if v.view.HasPending {
			lines = append(lines, "",
				statusNeutralStyle.Render(
					fmt.Sprintf("A draft for %q is already pending review.", v.view.Title)))
		} else {
			lines = append(lines, "",
				panelTitleStyle.Render("Draft replacement content"),
				v.editor.View())
		}
	}

	if v.notice != "" {
		lines = append(lines, "", statusStyle(v.noticeStatus).Render(v.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *checkerView) hints() string {
	if v.view.CanDraft() {
		suggest := "Ctrl+G → suggest content"
		if v.suggestUsed {
			suggest = "suggestion used"
		}
		return fmt.Sprintf("Tab → toggle editor    %s    Ctrl+S → submit draft    Ctrl+L → sign out", suggest)
	}
	return "Enter → check selected article    Ctrl+L → sign out    Ctrl+C → quit"
}

func (v *checkerView) setSize(width, height int) {
	v.titles.SetSize(max(20, width/2-4), max(8, height-12))
	v.editor.SetWidth(max(24, width-width/2-10))
}

func (v *checkerView) selectedTitle() string {
	item, ok := v.titles.SelectedItem().(titleItem)
	if !ok {
		return ""
	}
	return item.title
}

// selectCurrent evaluates the highlighted article. Each distinct
// selection is a fresh form instance: the editor, the one-shot
// suggestion action and any notice reset.
func (v *checkerView) selectCurrent() {
	title := v.selectedTitle()
	if title != v.lastTitle {
		v.editor.Reset()
		v.suggestUsed = false
		v.notice = ""
		v.blurEditor()
	}
	v.lastTitle = title
	v.evaluate(title)
}

// evaluate re-runs the status evaluator for the title, reloading
// articles and drafts from the store first.
func (v *checkerView) evaluate(title string) {
	view, err := v.app.evaluator.Evaluate(title)
	if err != nil {
		v.app.statusMsg = err.Error()
		v.app.logError("Evaluate %q: %v", title, err)
		return
	}
	v.view = view
	if !view.CanDraft() {
		v.blurEditor()
	}
}

func (v *checkerView) toggleEditor() tea.Cmd {
	if v.focusEditor {
		v.blurEditor()
		return nil
	}
	v.focusEditor = true
	return v.editor.Focus()
}

func (v *checkerView) blurEditor() {
	v.focusEditor = false
	v.editor.Blur()
}

// suggest pre-fills the editor with the canned template. One use per
// form instance.
func (v *checkerView) suggest() tea.Cmd {
	if !v.view.CanDraft() || v.suggestUsed {
		return nil
	}
	v.editor.SetValue(draft.Suggest(v.view.Title, v.app.now()))
	v.suggestUsed = true
	v.app.logInfo("Suggested content generated for %q", v.view.Title)
	v.focusEditor = true
	return v.editor.Focus()
}

// submit queues the entered content for review, then re-evaluates the
// same title so the pending notice replaces the form.
func (v *checkerView) submit() {
	if !v.view.CanDraft() {
		return
	}
	record, err := v.app.drafts.Submit(v.view.Title, v.editor.Value(), v.app.session.User)
	switch {
	case errors.Is(err, draft.ErrEmptyContent):
		v.notice = "Enter the proposed content before submitting the draft."
		v.noticeStatus = article.StatusOutdated
	case err != nil:
		v.notice = err.Error()
		v.noticeStatus = article.StatusOutdated
		v.app.logError("Submit draft for %q: %v", v.view.Title, err)
	default:
		v.app.logInfo("Draft for %q submitted by %s", record.Title, record.SubmittedBy)
		v.editor.Reset()
		v.blurEditor()
		v.notice = fmt.Sprintf("Draft for %q submitted for review.", record.Title)
		v.noticeStatus = article.StatusCurrent
		v.evaluate(v.view.Title)
	}
}
