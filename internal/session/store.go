package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when no session is persisted.
var ErrNoSession = errors.New("no active session")

// Session is the locally persisted login state: the bearer token plus enough
// context to label output and detect a base-URL change. Token validity is
// never judged client-side; the server decides via its responses.
type Session struct {
	Token     string    `db:"token"`
	Email     string    `db:"email"`
	BaseURL   string    `db:"base_url"`
	CreatedAt time.Time `db:"created_at"`
}

// Store holds the current bearer session. At most one session is active per
// store; an absent token means requests go out unauthenticated.
type Store interface {
	// Token returns the current bearer token, or "" when no session exists.
	Token(ctx context.Context) (string, error)
	// Get returns the full persisted session, or ErrNoSession.
	Get(ctx context.Context) (*Session, error)
	// Set replaces the persisted session.
	Set(ctx context.Context, s Session) error
	// Clear removes the persisted session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
