package session

import (
	"context"
	"time"
)

// Repository is the storage behind a Store. All times are passed in by the
// caller so that every implementation agrees on one clock.
type Repository interface {
	// Insert stores a new session and fills in its Id.
	Insert(ctx context.Context, s *Session) error
	// CheckAndSweep reports whether token is live at now and then deletes
	// every session with expires <= now. The check sees the state before
	// the sweep.
	CheckAndSweep(ctx context.Context, token string, now time.Time) (bool, int64, error)
	// DeleteExpired deletes every session with expires <= now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// FindByToken returns the session regardless of expiry, or
	// ErrSessionNotFound.
	FindByToken(ctx context.Context, token string) (Session, error)
	// Delete removes the session for token. Missing tokens are not an error.
	Delete(ctx context.Context, token string) error
	Close()
}
