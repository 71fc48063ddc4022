// Package store persists the three application collections — article
// dates, pending drafts and the login session — as independent JSON
// files under .staletrack/state/.
//
// The contract is deliberately simple: loads always read the file,
// saves always rewrite the whole collection. Callers never cache, so
// every operation acts on the latest persisted snapshot. Unparsable
// payloads degrade to the absent-value default instead of failing.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"staletrack/internal/article"
	"staletrack/internal/auth"
	"staletrack/internal/config"
	"staletrack/internal/draft"
)

// Store reads and writes the persisted collections.
type Store struct {
	articlesPath string
	draftsPath   string
	sessionPath  string
}

// New creates a store rooted at the project's state directory.
func New(cfg *config.Config) *Store {
	return &Store{
		articlesPath: cfg.ArticlesPath(),
		draftsPath:   cfg.DraftsPath(),
		sessionPath:  cfg.SessionPath(),
	}
}

// LoadArticles reads the persisted article date map. When no catalog
// has been persisted yet (or the payload is corrupt) the built-in seed
// set is returned; it is not written back until the first save.
func (s *Store) LoadArticles() (article.Dates, error) {
	data, err := os.ReadFile(s.articlesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return article.Seed(), nil
		}
		return nil, err
	}
	var dates article.Dates
	if err := json.Unmarshal(data, &dates); err != nil || len(dates) == 0 {
		return article.Seed(), nil
	}
	return dates, nil
}

// SaveArticles rewrites the persisted article date map.
func (s *Store) SaveArticles(dates article.Dates) error {
	return writeJSON(s.articlesPath, dates)
}

// ArticleDate returns the persisted freshness date for one title.
func (s *Store) ArticleDate(title string) (string, bool, error) {
	dates, err := s.LoadArticles()
	if err != nil {
		return "", false, err
	}
	date, ok := dates[title]
	return date, ok, nil
}

// LoadDrafts reads the persisted draft list in submission order. An
// absent or corrupt file is an empty list.
func (s *Store) LoadDrafts() ([]draft.Draft, error) {
	data, err := os.ReadFile(s.draftsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var drafts []draft.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, nil
	}
	return drafts, nil
}

// SaveDrafts rewrites the persisted draft list.
func (s *Store) SaveDrafts(drafts []draft.Draft) error {
	if drafts == nil {
		drafts = []draft.Draft{}
	}
	return writeJSON(s.draftsPath, drafts)
}

// HasPendingDraft reports whether a pending draft exists for the title.
func (s *Store) HasPendingDraft(title string) (bool, error) {
	drafts, err := s.LoadDrafts()
	if err != nil {
		return false, err
	}
	for _, d := range drafts {
		if d.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// LoadSession reads the persisted login session. Absent, corrupt or
// invalid-role payloads all read as "not signed in".
func (s *Store) LoadSession() (auth.Session, bool) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		return auth.Session{}, false
	}
	var stored auth.Session
	if err := json.Unmarshal(data, &stored); err != nil {
		return auth.Session{}, false
	}
	session, err := auth.NewSession(stored.User, stored.Role)
	if err != nil {
		return auth.Session{}, false
	}
	return session, true
}

// SaveSession persists the login session.
func (s *Store) SaveSession(session auth.Session) error {
	return writeJSON(s.sessionPath, session)
}

// ClearSession removes the persisted login session.
func (s *Store) ClearSession() error {
	err := os.Remove(s.sessionPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(encoded, '\n'), 0o644)
}
