package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PersistenceError is a store failure already reduced to a message that is
// safe to hand back to the caller.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence classifies a gorm / pgx error. Nil stays nil.
func Persistence(err error) error {
	if err == nil {
		return nil
	}

	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}

	return &PersistenceError{Message: persistenceMessage(err), Err: err}
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func persistenceMessage(err error) string {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "record not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "record already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "related record does not exist"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return "record already exists"
		case "23503":
			return "related record does not exist"
		case "23514":
			return "value violates a check constraint"
		}
		return pgErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An error occurred"
}
