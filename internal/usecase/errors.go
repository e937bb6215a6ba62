package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// ValidationError carries every rule a payload broke.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// StoreError wraps a failed write to the database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Detail describes the failure using the message reported by PostgreSQL
// when there is one.
func (e *StoreError) Detail() string {
	var pgErr *pgconn.PgError
	if !errors.As(e.Err, &pgErr) {
		return e.Error()
	}

	detail := pgErr.Message
	if pgErr.Detail != "" {
		detail += ": " + pgErr.Detail
	}
	switch pgErr.Code {
	case foreignKeyViolation:
		return "referenced record does not exist (" + detail + ")"
	case uniqueViolation:
		return "record already exists (" + detail + ")"
	case checkViolation:
		return "value rejected by the database (" + detail + ")"
	}
	return detail
}

// PostgreSQL error codes
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"
)
