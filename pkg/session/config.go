package session

import (
	"context"
	"fmt"
	"time"

	"github.com/JustDean/sessionstore/pkg/postgres"
	redis_utils "github.com/JustDean/sessionstore/pkg/redis"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Backend       string        `mapstructure:"backend"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type StoreConfig struct {
	Session Config
	Db      postgres.Config
	Cache   redis_utils.Config
}

func SetStore(c StoreConfig) (*Store, error) {
	var repo Repository
	switch c.Session.Backend {
	case BackendPostgres, "":
		dbpool, err := postgres.SetPostgresPool(c.Db)
		if err != nil {
			return nil, err
		}
		repo = NewPostgresRepository(dbpool)
	case BackendMemory:
		repo = NewMemoryRepository()
	default:
		return nil, fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	opts := []Option{
		WithTTL(c.Session.TTL),
		WithSweepInterval(c.Session.SweepInterval),
	}
	if c.Cache.Enabled {
		cache, err := redis_utils.SetRedisPool(context.Background(), c.Cache)
		if err != nil {
			repo.Close()
			return nil, err
		}
		opts = append(opts, WithCache(cache))
	}
	return NewStore(repo, opts...), nil
}
