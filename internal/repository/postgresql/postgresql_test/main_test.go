package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var testDB *TestDatabaseSetup

func TestMain(m *testing.M) {
	setup, err := NewTestDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if setup == nil {
		fmt.Println("TEST_DATABASE_URL not set, skipping postgresql integration tests")
		os.Exit(0)
	}
	testDB = setup

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

// seededContext returns a context bound to a seeded transaction that is rolled back when t ends.
func seededContext(t *testing.T) context.Context {
	t.Helper()
	ctx, tx, err := testDB.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return ctx
}
