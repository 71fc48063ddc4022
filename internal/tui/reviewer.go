package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staletrack/internal/article"
	"staletrack/internal/draft"
	"staletrack/internal/review"
)

// decisionCloseDelay is the pause between a decision and the detail
// view closing. A UX beat so the notice is readable, not a correctness
// requirement.
const decisionCloseDelay = 1500 * time.Millisecond

// decisionCloseMsg closes the detail view and refreshes the queue
// after the post-decision delay.
type decisionCloseMsg struct{}

// draftItem implements list.Item for the pending queue.
type draftItem struct {
	d draft.Draft
}

func (i draftItem) Title() string { return fmt.Sprintf("Draft for: %s", i.d.Title) }
func (i draftItem) Description() string {
	return fmt.Sprintf("submitted by %s · original date %s", i.d.SubmittedBy, i.d.OriginalDate)
}
func (i draftItem) FilterValue() string { return i.d.Title }

// reviewerView is the pending-draft queue with a detail overlay. At
// most one draft is open at a time.
type reviewerView struct {
	app   *App
	queue list.Model

	open    *draft.Draft
	decided bool
	notice  string
	// noticeStatus reuses the tri-state classifier for decision
	// messages: current = published, outdated = rejected.
	noticeStatus article.Status
}

func newReviewerView(app *App) *reviewerView {
	queue := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	queue.Title = "Pending drafts"
	queue.SetShowStatusBar(false)
	queue.SetFilteringEnabled(false)

	v := &reviewerView{app: app, queue: queue}
	v.refreshQueue()
	return v
}

// refreshQueue reloads the full pending list from the store. Never
// cached, so it reflects changes made elsewhere since the last render.
func (v *reviewerView) refreshQueue() {
	pending, err := v.app.reviews.Pending()
	if err != nil {
		v.app.statusMsg = err.Error()
		v.app.logError("Load pending drafts: %v", err)
		return
	}
	items := make([]list.Item, 0, len(pending))
	for _, d := range pending {
		items = append(items, draftItem{d: d})
	}
	v.queue.SetItems(items)
}

func (v *reviewerView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case decisionCloseMsg:
		v.closeDetail()
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if v.open == nil {
				v.openSelected()
				return nil
			}
		case "esc":
			if v.open != nil && !v.decided {
				v.closeDetail()
			}
			return nil
		case "a":
			return v.decide(true)
		case "r":
			return v.decide(false)
		}
		if v.open != nil {
			return nil
		}
	}

	var cmd tea.Cmd
	v.queue, cmd = v.queue.Update(msg)
	return cmd
}

func (v *reviewerView) View() string {
	if v.open != nil {
		return v.renderDetail()
	}

	width := v.app.width
	if width <= 0 {
		width = 100
	}
	var body string
	if len(v.queue.Items()) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			panelTitleStyle.Render("Pending drafts"),
			"",
			statusNeutralStyle.Render("No pending drafts to review right now."),
		)
	} else {
		body = v.queue.View()
	}
	panel := panelStyle.Width(max(40, width-4)).Render(body)
	hint := hintStyle.Render("Enter → review draft    Ctrl+L → sign out    Ctrl+C → quit")
	return lipgloss.JoinVertical(lipgloss.Left, panel, hint)
}

func (v *reviewerView) renderDetail() string {
	d := v.open
	lines := []string{
		panelTitleStyle.Render(fmt.Sprintf("Draft for: %s", d.Title)),
		"",
		fmt.Sprintf("Submitted by:  %s", d.SubmittedBy),
		fmt.Sprintf("Original date: %s", d.OriginalDate),
		"",
		panelTitleStyle.Render("Proposed content"),
		d.Content,
		"",
	}
	if v.notice != "" {
		lines = append(lines, statusStyle(v.noticeStatus).Render(v.notice))
	} else {
		lines = append(lines, statusNeutralStyle.Render("Awaiting your decision…"))
	}
	panel := panelStyle.Width(max(40, v.app.width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))

	hint := hintStyle.Render("A → approve and publish    R → reject    Esc → back")
	if v.decided {
		hint = hintStyle.Render("Closing…")
	}
	return lipgloss.JoinVertical(lipgloss.Left, panel, hint)
}

func (v *reviewerView) setSize(width, height int) {
	v.queue.SetSize(max(30, width-8), max(8, height-12))
}

// openSelected resolves the highlighted draft by id against the latest
// persisted list. A stale entry (already resolved elsewhere) just
// refreshes the queue.
func (v *reviewerView) openSelected() {
	item, ok := v.queue.SelectedItem().(draftItem)
	if !ok {
		return
	}
	d, err := v.app.reviews.Open(item.d.ID)
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			v.refreshQueue()
			return
		}
		v.app.statusMsg = err.Error()
		return
	}
	v.open = &d
	v.decided = false
	v.notice = ""
}

// decide applies the reviewer's decision to the currently open draft.
// No-ops when no draft is open, a decision is already in flight, or the
// id no longer resolves. Returns the deferred-close command.
func (v *reviewerView) decide(approve bool) tea.Cmd {
	if v.open == nil || v.decided {
		return nil
	}
	var (
		decided draft.Draft
		err     error
	)
	if approve {
		decided, err = v.app.reviews.Approve(v.open.ID)
	} else {
		decided, err = v.app.reviews.Reject(v.open.ID)
	}
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			// Already decided by a race; close quietly.
			v.closeDetail()
			return nil
		}
		v.app.statusMsg = err.Error()
		v.app.logError("Decide draft %s: %v", v.open.ID, err)
		return nil
	}

	if approve {
		v.notice = fmt.Sprintf("Draft approved. Article %q is published and now current.", decided.Title)
		v.noticeStatus = article.StatusCurrent
		v.app.logInfo("Approved draft for %q · freshness date reset", decided.Title)
	} else {
		v.notice = "Draft rejected. The contributor will be notified."
		v.noticeStatus = article.StatusOutdated
		v.app.logInfo("Rejected draft for %q", decided.Title)
	}
	v.decided = true
	return tea.Tick(decisionCloseDelay, func(time.Time) tea.Msg {
		return decisionCloseMsg{}
	})
}

func (v *reviewerView) closeDetail() {
	v.open = nil
	v.decided = false
	v.notice = ""
	v.refreshQueue()
}
