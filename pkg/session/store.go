package session

import (
	"context"
	"crypto/rand"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JustDean/sessionstore/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a session lives after issuance. It is never
// extended.
const DefaultTTL = 12 * time.Hour

type Option func(*Store)

func WithCache(c *redis.Client) Option {
	return func(s *Store) { s.cache = c }
}

func WithClock(c utils.Clock) Option {
	return func(s *Store) { s.now = c }
}

func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithSweepInterval makes Run delete expired sessions periodically, in
// addition to the sweep done by every IsValid call.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Store) { s.sweepInterval = d }
}

func WithTokenReader(r io.Reader) Option {
	return func(s *Store) { s.random = r }
}

// Store issues, validates and revokes session tokens. It owns the backend
// handle and releases it on Close.
type Store struct {
	repo          Repository
	cache         *redis.Client
	now           utils.Clock
	ttl           time.Duration
	sweepInterval time.Duration
	random        io.Reader

	closed    atomic.Bool
	closeOnce sync.Once
}

func NewStore(repo Repository, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		now:    utils.GetNowTz,
		ttl:    DefaultTTL,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ready() error {
	if s == nil || s.repo == nil || s.closed.Load() {
		return ErrNoConnection
	}
	return nil
}

func (s *Store) Run(ctx context.Context) {
	log.Println("Starting Session Store")
	if s.sweepInterval > 0 {
		s.sweepEvery(ctx, s.sweepInterval)
	} else {
		<-ctx.Done()
	}
	log.Println("Stopping Session Store")
	s.Close()
	log.Println("Session Store is stopped")
}

func (s *Store) sweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("Error Sweep - %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Success Sweep - removed %d expired sessions", n)
			}
		}
	}
}

// Close releases the backend and the cache. It is safe to call more than
// once; every operation afterwards fails with ErrNoConnection.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.repo != nil {
			s.repo.Close()
		}
		if s.cache != nil {
			s.cache.Close()
		}
	})
}

// Issue creates a session for login and returns its token.
func (s *Store) Issue(ctx context.Context, login string, roleId int32) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if login == "" {
		return "", ErrEmptyLogin
	}
	token, err := generateToken(s.random)
	if err != nil {
		return "", err
	}
	sess := Session{
		Token:   token,
		Login:   login,
		RoleId:  roleId,
		Expires: s.now().Add(s.ttl).Truncate(time.Second),
	}
	if err := s.repo.Insert(ctx, &sess); err != nil {
		return "", err
	}
	s.cacheSet(ctx, sess)
	return token, nil
}

// IsValid reports whether token belongs to a live session. Every call also
// deletes all expired sessions, using the same instant as the check, so the
// caller's own live session is never removed.
func (s *Store) IsValid(ctx context.Context, token string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	valid, swept, err := s.repo.CheckAndSweep(ctx, token, s.now())
	if err != nil {
		return false, err
	}
	if swept > 0 {
		log.Printf("Swept %d expired sessions", swept)
	}
	return valid, nil
}

// GetLogin returns the login the token was issued for. It does not look at
// expiry; callers that care should check IsValid first.
func (s *Store) GetLogin(ctx context.Context, token string) (string, error) {
	sess, err := s.lookup(ctx, token)
	if err != nil {
		return "", err
	}
	return sess.Login, nil
}

// GetRoleId returns the role the token was issued with. Like GetLogin it
// ignores expiry.
func (s *Store) GetRoleId(ctx context.Context, token string) (int32, error) {
	sess, err := s.lookup(ctx, token)
	if err != nil {
		return 0, err
	}
	return sess.RoleId, nil
}

// lookup reads through the cache but never fills it. Only Issue writes
// entries, so a lookup racing with Revoke cannot put a revoked session back.
func (s *Store) lookup(ctx context.Context, token string) (Session, error) {
	if err := s.ready(); err != nil {
		return Session{}, err
	}
	if cs, err := s.cacheGet(ctx, token); err == nil {
		return Session{Token: token, Login: cs.Login, RoleId: cs.RoleId, Expires: cs.Expires}, nil
	}
	return s.repo.FindByToken(ctx, token)
}

// Revoke deletes the session for token. Unknown tokens are ignored.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		return err
	}
	if err := s.cacheDel(ctx, token); err != nil {
		return queryError("revoke", err)
	}
	return nil
}

// Sweep deletes all expired sessions and returns how many were removed.
func (s *Store) Sweep(ctx context.Context) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return s.repo.DeleteExpired(ctx, s.now())
}
