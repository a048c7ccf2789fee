package repository_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"blogcraft/internal/infrastructure/database"
)

// blogsDB is a migrated PostgreSQL instance running in a throwaway container.
type blogsDB struct {
	Pool *pgxpool.Pool
	URL  string
}

func migrationsDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
}

// startBlogsDB runs postgres:16-alpine, applies the migrations and opens a
// pool. Container and pool are released when t finishes.
func startBlogsDB(t *testing.T) *blogsDB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blogcraft_test"),
		postgres.WithUsername("blogcraft"),
		postgres.WithPassword("blogcraft"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	if err := database.Migrate(url, migrationsDir()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// A second run must be a no-op.
	if err := database.Migrate(url, migrationsDir()); err != nil {
		t.Fatalf("re-run migrations: %v", err)
	}

	pool, err := database.NewPostgres(ctx, database.PoolConfig{URL: url, MaxConns: 4})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return &blogsDB{Pool: pool, URL: url}
}

// reset empties the blogs table and restarts its id sequence at 1.
func (db *blogsDB) reset(t *testing.T) {
	t.Helper()
	if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE blogs RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate blogs: %v", err)
	}
}
