package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"unique", &pgconn.PgError{Code: "23505"}, UniqueViolation},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ForeignKeyViolation},
		{"not null", &pgconn.PgError{Code: "23502"}, Other},
		{"syntax", &pgconn.PgError{Code: "42601"}, Other},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), UniqueViolation},
		{"plain", errors.New("connection refused"), Other},
		{"nil", nil, Other},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.err))
		})
	}
}

func TestIsAndConstraint(t *testing.T) {
	err := fmt.Errorf("insert invoice: %w", &pgconn.PgError{Code: "23503", ConstraintName: "invoices_comp_code_fkey"})

	assert.True(t, Is(err, ForeignKeyViolation))
	assert.False(t, Is(err, UniqueViolation))
	assert.Equal(t, "invoices_comp_code_fkey", Constraint(err))
	assert.Empty(t, Constraint(errors.New("boom")))
}
