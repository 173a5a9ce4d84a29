package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	QUERY_TIMEOUT = 10 * time.Second

	uniqueViolation = "23505"
)

const (
	insertSessionQuery = "INSERT INTO sessions (token, login, role_id, expires) VALUES ($1, $2, $3, $4) RETURNING id"
	validTokenQuery    = "SELECT EXISTS (SELECT 1 FROM sessions WHERE token = $1 AND expires > $2)"
	deleteExpiredQuery = "DELETE FROM sessions WHERE expires <= $1"
	selectByTokenQuery = "SELECT id, token, login, role_id, expires FROM sessions WHERE token = $1 LIMIT 1"
	deleteByTokenQuery = "DELETE FROM sessions WHERE token = $1"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type PostgresRepository struct {
	dbpool DB
}

func NewPostgresRepository(dbpool DB) *PostgresRepository {
	return &PostgresRepository{dbpool: dbpool}
}

func (r *PostgresRepository) Insert(ctx context.Context, s *Session) error {
	queryCtx, cancel := context.WithTimeout(ctx, QUERY_TIMEOUT)
	defer cancel()
	err := r.dbpool.QueryRow(queryCtx, insertSessionQuery, s.Token, s.Login, s.RoleId, s.Expires).Scan(&s.Id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			err = fmt.Errorf("%w: %w", ErrDuplicateToken, err)
		}
		return queryError("insert", err)
	}
	return nil
}

// CheckAndSweep runs the check and the sweep in one transaction so a
// concurrent writer never sees the sweep without the check.
func (r *PostgresRepository) CheckAndSweep(ctx context.Context, token string, now time.Time) (bool, int64, error) {
	var (
		valid bool
		swept int64
	)
	queryCtx, cancel := context.WithTimeout(ctx, QUERY_TIMEOUT)
	defer cancel()
	err := pgx.BeginFunc(queryCtx, r.dbpool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(queryCtx, validTokenQuery, token, now).Scan(&valid); err != nil {
			return err
		}
		tag, err := tx.Exec(queryCtx, deleteExpiredQuery, now)
		if err != nil {
			return err
		}
		swept = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return false, 0, queryError("validate", err)
	}
	return valid, swept, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	queryCtx, cancel := context.WithTimeout(ctx, QUERY_TIMEOUT)
	defer cancel()
	tag, err := r.dbpool.Exec(queryCtx, deleteExpiredQuery, now)
	if err != nil {
		return 0, queryError("sweep", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (Session, error) {
	var s Session
	queryCtx, cancel := context.WithTimeout(ctx, QUERY_TIMEOUT)
	defer cancel()
	err := r.dbpool.QueryRow(queryCtx, selectByTokenQuery, token).Scan(&s.Id, &s.Token, &s.Login, &s.RoleId, &s.Expires)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, queryError("lookup", err)
	}
	// Tables created with CHAR columns pad values with blanks.
	s.Token = strings.TrimRight(s.Token, " ")
	s.Login = strings.TrimRight(s.Login, " ")
	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	queryCtx, cancel := context.WithTimeout(ctx, QUERY_TIMEOUT)
	defer cancel()
	_, err := r.dbpool.Exec(queryCtx, deleteByTokenQuery, token)
	return queryError("revoke", err)
}

func (r *PostgresRepository) Close() {
	r.dbpool.Close()
}
