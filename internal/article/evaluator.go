package article

import (
	"fmt"
	"math"
	"time"
)

// StaleAfterDays separates CURRENT from OUTDATED. Strict inequality:
// an article exactly this many whole days old is still CURRENT.
const StaleAfterDays = 730

// daysPerYear is used only for the reported age, not the threshold.
const daysPerYear = 365.25

// Status classifies an evaluation result. It doubles as the style
// selector for the result panel.
type Status int

const (
	// StatusNeutral is the prompt state before an article is chosen.
	StatusNeutral Status = iota
	// StatusCurrent means the article is within the freshness window.
	StatusCurrent
	// StatusOutdated means the article needs a refresh.
	StatusOutdated
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusOutdated:
		return "outdated"
	default:
		return "neutral"
	}
}

// View is the evaluated state of one article selection, everything the
// checker screen needs to render.
type View struct {
	Title    string
	Status   Status
	Date     string
	Days     int
	AgeYears float64
	// HasPending is set when a draft for the title already awaits
	// review; the drafting form is hidden in that case.
	HasPending bool
	Message    string
}

// CanDraft reports whether the drafting form should be offered.
func (v View) CanDraft() bool {
	return v.Status == StatusOutdated && !v.HasPending
}

// Source is what the evaluator reads on every invocation. Implemented
// by the store; evaluation never caches, so mutations made from the
// reviewer side are picked up on the next selection change.
type Source interface {
	LoadArticles() (Dates, error)
	HasPendingDraft(title string) (bool, error)
}

// Evaluator computes staleness for a selected article against an
// injected clock.
type Evaluator struct {
	source Source
	now    func() time.Time
}

// NewEvaluator creates an evaluator. A nil clock defaults to time.Now.
func NewEvaluator(source Source, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{source: source, now: now}
}

// Evaluate reloads the catalog and draft list, then classifies the
// selection. An empty or unknown title yields the neutral prompt view.
func (e *Evaluator) Evaluate(title string) (View, error) {
	neutral := View{
		Title:   title,
		Status:  StatusNeutral,
		Message: "Select an article to check its status.",
	}
	if title == "" {
		return neutral, nil
	}

	dates, err := e.source.LoadArticles()
	if err != nil {
		return View{}, err
	}
	dateString, ok := dates[title]
	if !ok {
		// Stale selection: the title left the catalog between renders.
		return neutral, nil
	}
	created, err := ParseDate(dateString)
	if err != nil {
		return View{}, fmt.Errorf("article %q has invalid date %q: %w", title, dateString, err)
	}

	days := ElapsedDays(created, e.now())
	view := View{Title: title, Date: dateString, Days: days}

	if days > StaleAfterDays {
		view.Status = StatusOutdated
		view.AgeYears = AgeYears(days)
		view.Message = fmt.Sprintf(
			"Article outdated: this content is %.1f years old (created on %s) and needs a refresh.",
			view.AgeYears, dateString,
		)
		pending, err := e.source.HasPendingDraft(title)
		if err != nil {
			return View{}, err
		}
		view.HasPending = pending
		return view, nil
	}

	view.Status = StatusCurrent
	view.Message = fmt.Sprintf(
		"Article current: created on %s and up to date.", dateString,
	)
	return view, nil
}

// ElapsedDays returns the whole days elapsed between the creation date
// and now, floored.
func ElapsedDays(created, now time.Time) int {
	return int(math.Floor(now.Sub(created).Hours() / 24))
}

// AgeYears converts elapsed days to years at one decimal place.
func AgeYears(days int) float64 {
	return math.Round(float64(days)/daysPerYear*10) / 10
}
