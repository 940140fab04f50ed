package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPersistence(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", gorm.ErrRecordNotFound, "record not found"},
		{"wrapped not found", fmt.Errorf("delete booking: %w", gorm.ErrRecordNotFound), "record not found"},
		{"duplicate", gorm.ErrDuplicatedKey, "record already exists"},
		{"fk", gorm.ErrForeignKeyViolated, "related record does not exist"},
		{"pg unique", &pgconn.PgError{Code: "23505"}, "record already exists"},
		{"pg check", &pgconn.PgError{Code: "23514"}, "value violates a check constraint"},
		{"pg other", &pgconn.PgError{Code: "08006", Message: "connection failure"}, "connection failure"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Persistence(tt.err)
			assert.True(t, IsPersistence(err))
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPersistence_NilAndIdempotent(t *testing.T) {
	assert.NoError(t, Persistence(nil))

	once := Persistence(gorm.ErrRecordNotFound)
	assert.Same(t, once, Persistence(once))
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("profile_required"))
	assert.True(t, IsBusiness(err, "profile_required"))
	assert.False(t, IsBusiness(err, "unauthenticated"))
}

func TestBusinessCode(t *testing.T) {
	err := fmt.Errorf("mark paid: %w", ErrBusiness("invalid_state"))

	assert.Equal(t, "invalid_state", BusinessCode(err))
	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "other"))
	assert.False(t, IsBusiness(errors.New("plain"), ""))
	assert.ErrorIs(t, err, ErrBusiness("invalid_state"))
}
