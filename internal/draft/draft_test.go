package draft

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeStore struct {
	dates  map[string]string
	drafts []Draft
	saves  int
}

func (f *fakeStore) ArticleDate(title string) (string, bool, error) {
	date, ok := f.dates[title]
	return date, ok, nil
}

func (f *fakeStore) LoadDrafts() ([]Draft, error) {
	out := make([]Draft, len(f.drafts))
	copy(out, f.drafts)
	return out, nil
}

func (f *fakeStore) SaveDrafts(drafts []Draft) error {
	f.drafts = drafts
	f.saves++
	return nil
}

func testClock() time.Time {
	return time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, testClock)
}

func TestSubmitPersistsPendingDraft(t *testing.T) {
	store := &fakeStore{dates: map[string]string{"X": "2020-01-01"}}
	s := newTestService(store)

	record, err := s.Submit("X", "Fix", "user")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if record.Status != StatusPending {
		t.Fatalf("status = %q, want %q", record.Status, StatusPending)
	}
	if record.OriginalDate != "2020-01-01" {
		t.Fatalf("original date = %q, want article's date at submission", record.OriginalDate)
	}
	if record.SubmittedBy != "user" {
		t.Fatalf("submitter = %q, want user", record.SubmittedBy)
	}
	if !record.CreatedAt.Equal(testClock()) {
		t.Fatalf("created at = %v, want clock reading", record.CreatedAt)
	}
	if len(store.drafts) != 1 || store.saves != 1 {
		t.Fatalf("expected one persisted draft and one save, got %d/%d", len(store.drafts), store.saves)
	}
}

func TestSubmitTrimsContent(t *testing.T) {
	store := &fakeStore{dates: map[string]string{"X": "2020-01-01"}}
	s := newTestService(store)
	record, err := s.Submit("X", "  padded fix \n", "user")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.Content != "padded fix" {
		t.Fatalf("content = %q, want trimmed", record.Content)
	}
}

func TestSubmitRejectsWhitespaceOnlyContent(t *testing.T) {
	store := &fakeStore{dates: map[string]string{"X": "2020-01-01"}}
	s := newTestService(store)
	_, err := s.Submit("X", "   \n\t ", "user")
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(store.drafts) != 0 || store.saves != 0 {
		t.Fatalf("validation failure must leave the persisted list untouched")
	}
}

func TestSubmitRejectsUnknownArticle(t *testing.T) {
	store := &fakeStore{dates: map[string]string{}}
	s := newTestService(store)
	_, err := s.Submit("Ghost", "content", "user")
	if !errors.Is(err, ErrUnknownArticle) {
		t.Fatalf("expected ErrUnknownArticle, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("nothing may be persisted for an unknown article")
	}
}

func TestSubmitAppendsInOrder(t *testing.T) {
	store := &fakeStore{dates: map[string]string{"A": "2020-01-01", "B": "2020-02-02"}}
	s := newTestService(store)
	first, err := s.Submit("A", "one", "user")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Submit("B", "two", "user")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Fatalf("draft ids must be unique")
	}
	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Title != "A" || list[1].Title != "B" {
		t.Fatalf("expected submission order preserved, got %+v", list)
	}
}

func TestPendingFor(t *testing.T) {
	store := &fakeStore{dates: map[string]string{"X": "2020-01-01"}}
	s := newTestService(store)
	if _, ok, err := s.PendingFor("X"); err != nil || ok {
		t.Fatalf("expected no pending draft, got ok=%v err=%v", ok, err)
	}
	if _, err := s.Submit("X", "Fix", "user"); err != nil {
		t.Fatal(err)
	}
	found, ok, err := s.PendingFor("X")
	if err != nil || !ok {
		t.Fatalf("expected pending draft, got ok=%v err=%v", ok, err)
	}
	if found.Title != "X" {
		t.Fatalf("wrong draft returned: %+v", found)
	}
}

func TestSuggestIsDeterministic(t *testing.T) {
	now := testClock()
	a := Suggest("Working with Funnels", now)
	b := Suggest("Working with Funnels", now)
	if a != b {
		t.Fatalf("suggestion must be deterministic for a fixed clock")
	}
	if !strings.Contains(a, `"Working with Funnels"`) {
		t.Fatalf("suggestion must embed the title:\n%s", a)
	}
	if !strings.Contains(a, "2026-08-28") {
		t.Fatalf("suggestion must embed the current date:\n%s", a)
	}
}
