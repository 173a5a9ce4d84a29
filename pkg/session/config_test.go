package session

import (
	"context"
	"testing"
	"time"

	redis_utils "github.com/JustDean/sessionstore/pkg/redis"
	"github.com/alicebob/miniredis/v2"
)

func TestSetStoreMemoryWithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := SetStore(StoreConfig{
		Session: Config{Backend: BackendMemory, TTL: time.Hour},
		Cache:   redis_utils.Config{Enabled: true, Host: mr.Host(), Port: mr.Port(), Db: "0"},
	})
	if err != nil {
		t.Fatalf("SetStore: %v", err)
	}
	defer s.Close()
	if s.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", s.ttl)
	}
	token, err := s.Issue(context.Background(), "alice", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !mr.Exists(s.composeTokenKey(token)) {
		t.Error("cache not wired")
	}
}

func TestSetStoreDefaults(t *testing.T) {
	s, err := SetStore(StoreConfig{Session: Config{Backend: BackendMemory}})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if s.ttl != DefaultTTL || s.cache != nil || s.sweepInterval != 0 {
		t.Errorf("unexpected defaults: ttl=%v cache=%v sweep=%v", s.ttl, s.cache, s.sweepInterval)
	}
}

func TestSetStoreUnknownBackend(t *testing.T) {
	if _, err := SetStore(StoreConfig{Session: Config{Backend: "mongo"}}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSetStoreCacheUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()
	_, err := SetStore(StoreConfig{
		Session: Config{Backend: BackendMemory},
		Cache:   redis_utils.Config{Enabled: true, Host: host, Port: port, Db: "0"},
	})
	if err == nil {
		t.Error("expected error when cache is down")
	}
}
