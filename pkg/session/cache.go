package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedSession struct {
	Login   string    `json:"login"`
	RoleId  int32     `json:"role_id"`
	Expires time.Time `json:"expires"`
}

func (s *Store) composeTokenKey(token string) string {
	return fmt.Sprintf("sessiontoken_%s", token)
}

// cacheGet reports a miss as an error, redis.Nil included.
func (s *Store) cacheGet(ctx context.Context, token string) (cachedSession, error) {
	var cs cachedSession
	if s.cache == nil {
		return cs, redis.Nil
	}
	res, err := s.cache.Get(ctx, s.composeTokenKey(token)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Cache get failed for %s: %v", ShortToken(token), err)
		}
		return cs, err
	}
	err = json.Unmarshal([]byte(res), &cs)
	return cs, err
}

// cacheSet keeps the entry no longer than the session lives.
func (s *Store) cacheSet(ctx context.Context, sess Session) {
	if s.cache == nil {
		return
	}
	ttl := sess.Expires.Sub(s.now())
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(cachedSession{Login: sess.Login, RoleId: sess.RoleId, Expires: sess.Expires})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.composeTokenKey(sess.Token), data, ttl).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", ShortToken(sess.Token), err)
	}
}

func (s *Store) cacheDel(ctx context.Context, token string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, s.composeTokenKey(token)).Err()
}

// ShortToken returns a prefix of token that is safe to put in logs.
func ShortToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
