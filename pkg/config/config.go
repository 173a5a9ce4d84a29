package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JustDean/sessionstore/grpc"
	"github.com/JustDean/sessionstore/pkg/postgres"
	redis_utils "github.com/JustDean/sessionstore/pkg/redis"
	"github.com/JustDean/sessionstore/pkg/session"
	"github.com/JustDean/sessionstore/rest"
	"github.com/spf13/viper"
)

type Config struct {
	Db      postgres.Config    `mapstructure:"db"`
	Cache   redis_utils.Config `mapstructure:"cache"`
	Session session.Config     `mapstructure:"session"`
	Server  grpc.Config        `mapstructure:"server"`
	Http    rest.Config        `mapstructure:"http"`
}

func (c *Config) StoreConfig() session.StoreConfig {
	return session.StoreConfig{Session: c.Session, Db: c.Db, Cache: c.Cache}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.username", "sam")
	v.SetDefault("db.password", "sam")
	v.SetDefault("db.name", "sam")
	v.SetDefault("db.migrate", true)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.host", "localhost")
	v.SetDefault("cache.port", "6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", "1")

	v.SetDefault("session.backend", session.BackendPostgres)
	v.SetDefault("session.ttl", session.DefaultTTL)
	v.SetDefault("session.sweep_interval", 0)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "9999")

	v.SetDefault("http.enabled", true)
	v.SetDefault("http.host", "localhost")
	v.SetDefault("http.port", "8080")
}

// Load reads configuration from path when it is not empty, otherwise from
// an optional config.yaml in the working directory. Environment variables
// override both, e.g. DB_HOST or SESSION_TTL.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Session.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %v", c.Session.TTL)
	}
	return &c, nil
}
