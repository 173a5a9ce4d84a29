package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps sessions in process memory. It is meant for
// development and tests; nothing survives a restart.
type MemoryRepository struct {
	mu       sync.Mutex
	lastId   int64
	sessions map[string]Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]Session)}
}

func (r *MemoryRepository) Insert(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.Token]; ok {
		return queryError("insert", ErrDuplicateToken)
	}
	r.lastId++
	s.Id = r.lastId
	r.sessions[s.Token] = *s
	return nil
}

func (r *MemoryRepository) CheckAndSweep(_ context.Context, token string, now time.Time) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	valid := ok && !s.expiredAt(now)
	return valid, r.deleteExpired(now), nil
}

func (r *MemoryRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteExpired(now), nil
}

func (r *MemoryRepository) deleteExpired(now time.Time) int64 {
	var n int64
	for token, s := range r.sessions {
		if s.expiredAt(now) {
			delete(r.sessions, token)
			n++
		}
	}
	return n
}

func (r *MemoryRepository) FindByToken(_ context.Context, token string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *MemoryRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *MemoryRepository) Close() {}
