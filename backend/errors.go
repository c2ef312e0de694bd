package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned by Me when the backend holds no session for
	// the client's token (or the client has no token at all). Expected at
	// bootstrap; callers must not surface it.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidCredentials is returned by Login when the backend rejects
	// the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned by Signup when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// APIError carries any backend rejection that has no dedicated sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
