package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Db       string `mapstructure:"db"` // should be a positive number (0-15)
}

func (rc *Config) addr() string {
	return fmt.Sprintf("%s:%s", rc.Host, rc.Port)
}

func (rc *Config) dbNumber() (int, error) {
	n, err := strconv.Atoi(rc.Db)
	if err != nil {
		return 0, fmt.Errorf("cache db %q: %w", rc.Db, err)
	}
	if n < 0 || n > 15 {
		return 0, fmt.Errorf("cache db %d out of range", n)
	}
	return n, nil
}

// SetRedisPool connects to the cache and checks it answers.
func SetRedisPool(ctx context.Context, config Config) (*redis.Client, error) {
	dbNumber, err := config.dbNumber()
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.addr(),
		Password: config.Password,
		DB:       dbNumber,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
