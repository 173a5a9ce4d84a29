package postgres

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"name"`
	Migrate  bool   `mapstructure:"migrate"`
}

func (c *Config) url() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   c.DbName,
	}
	return u.String()
}

func SetPostgresPool(c Config) (*pgxpool.Pool, error) {
	dbpool, err := pgxpool.New(context.Background(), c.url())
	if err != nil {
		return nil, err
	}
	if err := dbpool.Ping(context.Background()); err != nil {
		dbpool.Close()
		return nil, err
	}
	if c.Migrate {
		if err := Migrate(context.Background(), dbpool); err != nil {
			dbpool.Close()
			return nil, err
		}
	}
	return dbpool, nil
}

// Execer is the part of a pool Migrate needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const createSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
	id      BIGSERIAL PRIMARY KEY,
	token   TEXT NOT NULL UNIQUE,
	login   TEXT NOT NULL,
	role_id INTEGER NOT NULL,
	expires TIMESTAMPTZ(0) NOT NULL
)`

const createExpiresIndex = `CREATE INDEX IF NOT EXISTS sessions_expires_idx ON sessions (expires)`

// Migrate creates the sessions table when it is missing. The database and
// its owner must already exist.
func Migrate(ctx context.Context, db Execer) error {
	for _, stmt := range []string{createSessionsTable, createExpiresIndex} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sessions: %w", err)
		}
	}
	return nil
}
