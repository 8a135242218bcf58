package repository

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "Deadlock", err: &pgconn.PgError{Code: deadlockDetected}, want: true},
		{name: "Serialization", err: errors.Wrap(&pgconn.PgError{Code: serializationFailure}, "sell"), want: true},
		{name: "UniqueViolation", err: &pgconn.PgError{Code: uniqueViolation}},
		{name: "Plain", err: errors.New("boom")},
		{name: "Nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestIsConstraintViolation(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: uniqueViolation, ConstraintName: productSlugKey}, "insert product")
	assert.True(t, isConstraintViolation(err, productSlugKey))
	assert.False(t, isConstraintViolation(err, "discounts_code_key"))
	assert.False(t, isConstraintViolation(&pgconn.PgError{Code: deadlockDetected, ConstraintName: productSlugKey}, productSlugKey))
}
