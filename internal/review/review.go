// Package review holds the reviewer-side workflow: walking the pending
// draft queue and publishing or discarding each submission.
package review

import (
	"errors"
	"time"

	"staletrack/internal/article"
	"staletrack/internal/draft"
)

// ErrNotFound is returned when a draft id no longer resolves, e.g. it
// was decided from another view. Callers treat it as a no-op.
var ErrNotFound = errors.New("draft not found")

// Store is what the workflow reads and writes. Implemented by the
// persistent store; both collections are reloaded on every operation so
// decisions always run against the latest persisted snapshot.
type Store interface {
	LoadArticles() (article.Dates, error)
	SaveArticles(article.Dates) error
	LoadDrafts() ([]draft.Draft, error)
	SaveDrafts([]draft.Draft) error
}

// Service runs the review workflow against a store and a clock.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a review service. A nil clock defaults to time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Pending reloads and returns the full pending queue in submission
// order. Never cached: the queue reflects concurrent changes each time
// it is displayed.
func (s *Service) Pending() ([]draft.Draft, error) {
	return s.store.LoadDrafts()
}

// Open locates a draft by id for the detail view. ErrNotFound when the
// id no longer resolves.
func (s *Service) Open(id string) (draft.Draft, error) {
	drafts, err := s.store.LoadDrafts()
	if err != nil {
		return draft.Draft{}, err
	}
	for _, d := range drafts {
		if d.ID == id {
			return d, nil
		}
	}
	return draft.Draft{}, ErrNotFound
}

// Approve publishes the draft: the referenced article's freshness date
// is rewritten to today — the only mutation Article records ever see —
// and the draft is removed from the queue. Articles are persisted
// before the draft removal so a crash in between can only leave the
// draft pending again, never lose the publish.
func (s *Service) Approve(id string) (draft.Draft, error) {
	drafts, idx, err := s.locate(id)
	if err != nil {
		return draft.Draft{}, err
	}
	decided := drafts[idx]

	dates, err := s.store.LoadArticles()
	if err != nil {
		return draft.Draft{}, err
	}
	dates[decided.Title] = s.now().Format(article.DateLayout)
	if err := s.store.SaveArticles(dates); err != nil {
		return draft.Draft{}, err
	}

	if err := s.store.SaveDrafts(remove(drafts, idx)); err != nil {
		return draft.Draft{}, err
	}
	return decided, nil
}

// Reject discards the draft. The article record is untouched.
func (s *Service) Reject(id string) (draft.Draft, error) {
	drafts, idx, err := s.locate(id)
	if err != nil {
		return draft.Draft{}, err
	}
	decided := drafts[idx]
	if err := s.store.SaveDrafts(remove(drafts, idx)); err != nil {
		return draft.Draft{}, err
	}
	return decided, nil
}

func (s *Service) locate(id string) ([]draft.Draft, int, error) {
	drafts, err := s.store.LoadDrafts()
	if err != nil {
		return nil, 0, err
	}
	for idx, d := range drafts {
		if d.ID == id {
			return drafts, idx, nil
		}
	}
	return nil, 0, ErrNotFound
}

func remove(drafts []draft.Draft, idx int) []draft.Draft {
	out := make([]draft.Draft, 0, len(drafts)-1)
	out = append(out, drafts[:idx]...)
	return append(out, drafts[idx+1:]...)
}
