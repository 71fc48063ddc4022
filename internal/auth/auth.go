// Package auth verifies credentials and derives the session role.
//
// The shipped provider is a static table read from config.yaml. It is
// deliberately not a security boundary: passwords are plain text and
// compared verbatim. Anything real slots in behind Provider.
package auth

import (
	"errors"
	"fmt"
)

// Role determines which view a signed-in user lands on.
type Role string

const (
	// RoleChecker evaluates article freshness and authors drafts.
	RoleChecker Role = "checker"
	// RoleReviewer approves or rejects pending drafts.
	RoleReviewer Role = "reviewer"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleChecker || r == RoleReviewer
}

// ErrInvalidCredentials is returned when a username/password pair does
// not match the credential table. Recoverable: the user retries.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Session is the signed-in identity. It is persisted verbatim so a
// restart lands the user back on their role view.
type Session struct {
	User string `json:"user"`
	Role Role   `json:"role"`
}

// NewSession constructs a session, validating the role. Sessions read
// back from disk go through this too, so a corrupted role field is
// caught before it routes anywhere.
func NewSession(user string, role Role) (Session, error) {
	if user == "" {
		return Session{}, fmt.Errorf("session user is required")
	}
	if !role.Valid() {
		return Session{}, fmt.Errorf("unknown role %q", role)
	}
	return Session{User: user, Role: role}, nil
}

// Provider verifies credentials and produces a session.
type Provider interface {
	Verify(username, password string) (Session, error)
}

// Static is a Provider backed by an in-memory credential table. Exactly
// one username is granted the reviewer role; everyone else is a checker.
type Static struct {
	credentials map[string]string
	reviewer    string
}

// NewStatic builds a static provider from a credential table and the
// reviewer username.
func NewStatic(credentials map[string]string, reviewer string) *Static {
	table := make(map[string]string, len(credentials))
	for user, pass := range credentials {
		table[user] = pass
	}
	return &Static{credentials: table, reviewer: reviewer}
}

// Verify checks for an exact, case-sensitive match and derives the role
// from username identity. No lockout, throttling or attempt counting.
func (s *Static) Verify(username, password string) (Session, error) {
	stored, ok := s.credentials[username]
	if !ok || stored != password {
		return Session{}, ErrInvalidCredentials
	}
	role := RoleChecker
	if username == s.reviewer {
		role = RoleReviewer
	}
	return NewSession(username, role)
}
