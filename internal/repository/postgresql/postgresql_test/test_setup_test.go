package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// schemaDir holds schema.sql and seed.sql, relative to this package.
var schemaDir = filepath.Join("..", "..", "..", "..", "db")

// TestDatabaseSetup initialises the test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and recreates the schema.
// It returns nil, nil when no test database is configured.
func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn, database.Options{MaxConns: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.execFile(context.Background(), db.Pool, "schema.sql"); err != nil {
		db.Close()
		return nil, err
	}
	return setup, nil
}

// Begin opens a transaction, loads the seed data inside it and returns a context
// that routes repository calls through it. Rolling back restores the database.
func (t *TestDatabaseSetup) Begin(ctx context.Context) (context.Context, pgx.Tx, error) {
	tx, err := t.DB.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := t.execFile(ctx, tx, "seed.sql"); err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, err
	}
	return postgresql.WithTx(ctx, tx), tx, nil
}

func (t *TestDatabaseSetup) execFile(ctx context.Context, q database.Querier, name string) error {
	sql, err := os.ReadFile(filepath.Join(schemaDir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if _, err := q.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}
	return nil
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
