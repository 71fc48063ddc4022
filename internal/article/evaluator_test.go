package article

import (
	"strings"
	"testing"
	"time"
)

type fakeSource struct {
	dates   Dates
	pending map[string]bool
	loads   int
}

func (f *fakeSource) LoadArticles() (Dates, error) {
	f.loads++
	return f.dates.Clone(), nil
}

func (f *fakeSource) HasPendingDraft(title string) (bool, error) {
	return f.pending[title], nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func dateBefore(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(DateLayout)
}

func TestEvaluateThresholdIsStrict(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{dates: Dates{
		"Exactly":  dateBefore(now, StaleAfterDays),
		"One Over": dateBefore(now, StaleAfterDays+1),
	}}
	e := NewEvaluator(source, func() time.Time { return now })

	view, err := e.Evaluate("Exactly")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusCurrent {
		t.Fatalf("exactly %d days must be CURRENT, got %s", StaleAfterDays, view.Status)
	}
	if view.Days != StaleAfterDays {
		t.Fatalf("days = %d, want %d", view.Days, StaleAfterDays)
	}

	view, err = e.Evaluate("One Over")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusOutdated {
		t.Fatalf("%d days must be OUTDATED, got %s", StaleAfterDays+1, view.Status)
	}
}

func TestEvaluateEmptyTitleIsNeutralPrompt(t *testing.T) {
	source := &fakeSource{dates: Seed()}
	e := NewEvaluator(source, fixedNow)
	view, err := e.Evaluate("")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusNeutral {
		t.Fatalf("expected neutral status, got %s", view.Status)
	}
	if view.CanDraft() {
		t.Fatalf("neutral view must not offer the drafting form")
	}
	if source.loads != 0 {
		t.Fatalf("empty selection should not hit the store, loads = %d", source.loads)
	}
}

func TestEvaluateUnknownTitleIsNeutral(t *testing.T) {
	source := &fakeSource{dates: Dates{"Known": "2025-01-01"}}
	e := NewEvaluator(source, fixedNow)
	view, err := e.Evaluate("Vanished")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusNeutral {
		t.Fatalf("expected neutral status for unknown title, got %s", view.Status)
	}
}

func TestEvaluateOutdatedReportsAge(t *testing.T) {
	source := &fakeSource{dates: Dates{"X": "2020-01-01"}}
	now := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	e := NewEvaluator(source, func() time.Time { return now })

	view, err := e.Evaluate("X")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusOutdated {
		t.Fatalf("expected OUTDATED, got %s", view.Status)
	}
	if view.AgeYears <= 2.0 {
		t.Fatalf("age = %.1f years, want > 2.0", view.AgeYears)
	}
	if !view.CanDraft() {
		t.Fatalf("no pending draft exists, form must be offered")
	}
	if !strings.Contains(view.Message, "2020-01-01") {
		t.Fatalf("message must name the original date: %q", view.Message)
	}
}

func TestEvaluateOutdatedWithPendingHidesForm(t *testing.T) {
	source := &fakeSource{
		dates:   Dates{"X": "2020-01-01"},
		pending: map[string]bool{"X": true},
	}
	e := NewEvaluator(source, fixedNow)
	view, err := e.Evaluate("X")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !view.HasPending {
		t.Fatalf("expected pending flag")
	}
	if view.CanDraft() {
		t.Fatalf("pending draft must hide the drafting form")
	}
}

func TestEvaluateCurrentEchoesDate(t *testing.T) {
	source := &fakeSource{dates: Dates{"Fresh": dateBefore(fixedNow(), 30)}}
	e := NewEvaluator(source, fixedNow)
	view, err := e.Evaluate("Fresh")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if view.Status != StatusCurrent {
		t.Fatalf("expected CURRENT, got %s", view.Status)
	}
	if view.CanDraft() {
		t.Fatalf("current article must not offer the drafting form")
	}
	if !strings.Contains(view.Message, view.Date) {
		t.Fatalf("message must echo the creation date: %q", view.Message)
	}
}

func TestEvaluateReloadsEveryCall(t *testing.T) {
	source := &fakeSource{dates: Dates{"X": "2020-01-01"}}
	e := NewEvaluator(source, fixedNow)
	for i := 0; i < 3; i++ {
		if _, err := e.Evaluate("X"); err != nil {
			t.Fatalf("evaluate: %v", err)
		}
	}
	if source.loads != 3 {
		t.Fatalf("expected a reload per evaluation, loads = %d", source.loads)
	}
}

func TestEvaluateInvalidDate(t *testing.T) {
	source := &fakeSource{dates: Dates{"Broken": "not-a-date"}}
	e := NewEvaluator(source, fixedNow)
	if _, err := e.Evaluate("Broken"); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}

func TestAgeYearsRounding(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{731, 2.0},
		{876, 2.4},
		{1096, 3.0},
		{2340, 6.4},
	}
	for _, tc := range cases {
		if got := AgeYears(tc.days); got != tc.want {
			t.Fatalf("AgeYears(%d) = %.1f, want %.1f", tc.days, got, tc.want)
		}
	}
}

func TestSeedTitlesSortedAndComplete(t *testing.T) {
	seed := Seed()
	titles := seed.Titles()
	if len(titles) != len(seed) {
		t.Fatalf("titles length mismatch: %d vs %d", len(titles), len(seed))
	}
	for i := 1; i < len(titles); i++ {
		if titles[i-1] >= titles[i] {
			t.Fatalf("titles not sorted at %d: %q >= %q", i, titles[i-1], titles[i])
		}
	}
	for _, date := range seed {
		if _, err := ParseDate(date); err != nil {
			t.Fatalf("seed contains invalid date %q: %v", date, err)
		}
	}
}
