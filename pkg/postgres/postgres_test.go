package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
)

func TestConfigUrl(t *testing.T) {
	c := Config{Host: "db", Port: "5432", Username: "sam", Password: "p@ss", DbName: "sessions"}
	if got, want := c.url(), "postgres://sam:p%40ss@db:5432/sessions"; got != want {
		t.Errorf("url() = %q, want %q", got, want)
	}
}

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()
	mock.ExpectExec(regexp.QuoteMeta(createSessionsTable)).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(regexp.QuoteMeta(createExpiresIndex)).WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

	if err := Migrate(context.Background(), mock); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMigrateFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()
	boom := errors.New("permission denied")
	mock.ExpectExec(regexp.QuoteMeta(createSessionsTable)).WillReturnError(boom)

	err = Migrate(context.Background(), mock)
	if !errors.Is(err, boom) {
		t.Fatalf("Migrate error = %v, want %v", err, boom)
	}
}
