package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/attendance/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
)

// SetupTestDatabase migrates and cleans the database behind
// TEST_POSTGRES_DSN. The test is skipped when the variable is unset.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		require.NoError(t, postgres.UpMigrations(context.Background(), dsn))

		db, err := postgres.ConnectToPostgres(context.Background(), dsn, 10)
		require.NoError(t, err)

		testDB = db
	})

	require.NotNil(t, testDB)
	CleanupDatabase(t, testDB)

	return testDB
}

func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"leave_requests",
		"attendance_records",
		"notifications",
		"notification_settings",
		"org_settings",
		"sessions",
		"login_attempts",
		"accounts",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("Warning: failed to cleanup table %s: %v", table, err)
		}
	}
}
