// Package draft holds the checker-side workflow: proposing replacement
// content for an outdated article and queueing it for review.
package draft

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"staletrack/internal/article"
)

// StatusPending is the only status a persisted draft ever carries.
// Approval and rejection delete the record instead of transitioning it.
const StatusPending = "pending"

// ErrEmptyContent blocks submission of a draft whose content is empty
// after trimming. Recoverable: nothing is persisted.
var ErrEmptyContent = errors.New("draft content is empty")

// ErrUnknownArticle is returned when a draft references a title that is
// not in the catalog.
var ErrUnknownArticle = errors.New("draft references an unknown article")

// Draft is a proposed replacement for an article, awaiting a reviewer's
// decision. OriginalDate freezes the article's freshness date at
// submission time so the reviewer sees what the checker saw.
type Draft struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	SubmittedBy  string    `json:"submitted_by"`
	OriginalDate string    `json:"original_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Suggest produces the canned replacement template for an article. Pure
// and deterministic for a given title and clock reading; it only
// pre-fills the content field.
func Suggest(title string, now time.Time) string {
	return fmt.Sprintf(`[SUGGESTED DRAFT - %s]

This new version of %q has been updated to reflect the latest product
changes and current best practices.

Key changes include:
* Refreshed screenshots for the key steps.
* Updated terminology matching the current product UI.
* Reworked configuration section for clarity.

Review the full content for accuracy before publishing.`,
		now.Format(article.DateLayout), title)
}

// Store is what the workflow reads and writes. Implemented by the
// persistent store; lists are reloaded on every operation.
type Store interface {
	ArticleDate(title string) (string, bool, error)
	LoadDrafts() ([]Draft, error)
	SaveDrafts([]Draft) error
}

// Service runs the draft workflow against a store and a clock.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService creates a draft service. A nil clock defaults to time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now, newID: uuid.NewString}
}

// Submit validates and persists a new pending draft for the given
// article title. The article's current freshness date is captured as
// OriginalDate. On validation failure nothing is written.
func (s *Service) Submit(title, content, submitter string) (Draft, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Draft{}, ErrEmptyContent
	}
	originalDate, ok, err := s.store.ArticleDate(title)
	if err != nil {
		return Draft{}, err
	}
	if !ok {
		return Draft{}, fmt.Errorf("%w: %q", ErrUnknownArticle, title)
	}

	drafts, err := s.store.LoadDrafts()
	if err != nil {
		return Draft{}, err
	}
	record := Draft{
		ID:           s.newID(),
		Title:        title,
		Content:      content,
		SubmittedBy:  submitter,
		OriginalDate: originalDate,
		Status:       StatusPending,
		CreatedAt:    s.now(),
	}
	if err := s.store.SaveDrafts(append(drafts, record)); err != nil {
		return Draft{}, err
	}
	return record, nil
}

// List reloads and returns all pending drafts in submission order.
func (s *Service) List() ([]Draft, error) {
	return s.store.LoadDrafts()
}

// PendingFor reloads the draft list and returns the pending draft for
// the given title, if one exists.
func (s *Service) PendingFor(title string) (Draft, bool, error) {
	drafts, err := s.store.LoadDrafts()
	if err != nil {
		return Draft{}, false, err
	}
	for _, d := range drafts {
		if d.Title == title {
			return d, true, nil
		}
	}
	return Draft{}, false, nil
}
