package session

import (
	"errors"
	"fmt"
)

var (
	ErrNoConnection    = errors.New("session store: no backend connection")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyLogin      = errors.New("login must not be empty")
	ErrDuplicateToken  = errors.New("token already exists")
)

// QueryError is returned when the backend rejects a statement.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("session %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Err: err}
}
