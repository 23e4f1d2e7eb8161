//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/MrJamesThe3rd/catasto/internal/database"
)

// NewPostgres starts a PostgreSQL container, applies the embedded schema and
// returns an open handle. Both are released when the test ends.
func NewPostgres(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("catasto"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := database.New(connStr)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	if err := database.MigrateSchema(ctx, db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
