//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Drivers lists the database/sql driver names the CIK adapters are checked
// against.
var Drivers = []string{"pgx", "postgres"}

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
}

// NewPostgresContainer starts a PostgreSQL container that is terminated when
// the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("cik"),
		tcpostgres.WithUsername("cik"),
		tcpostgres.WithPassword("cik"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn}
}

// Open connects to the container with the named driver and closes the pool
// when the test finishes.
func (p *PostgresContainer) Open(t *testing.T, driver string) *sql.DB {
	t.Helper()

	db, err := sql.Open(driver, p.DSN)
	if err != nil {
		t.Fatalf("failed to open %s connection: %v", driver, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("failed to ping postgres via %s: %v", driver, err)
	}
	return db
}

// TruncateTables removes all rows from the given tables.
func (p *PostgresContainer) TruncateTables(ctx context.Context, db *sql.DB, tables ...string) error {
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
