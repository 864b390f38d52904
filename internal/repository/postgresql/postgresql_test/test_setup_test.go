package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-recap/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recap/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// schema shadows the application tables with temporary ones for the current transaction
var schema = []string{
	`CREATE TEMP TABLE users (id TEXT PRIMARY KEY, email TEXT) ON COMMIT DROP`,
	`CREATE TEMP TABLE positions (id TEXT PRIMARY KEY, name TEXT) ON COMMIT DROP`,
	`CREATE TEMP TABLE work_schedules (id TEXT PRIMARY KEY, name TEXT, deleted_at TIMESTAMPTZ) ON COMMIT DROP`,
	`CREATE TEMP TABLE work_schedule_times (
		work_schedule_id TEXT, day_of_week INT, clock_in_time TIME, clock_out_time TIME
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE work_schedule_locations (
		work_schedule_id TEXT, latitude FLOAT8, longitude FLOAT8, radius_meters INT
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE employees (
		id TEXT PRIMARY KEY, user_id TEXT, position_id TEXT, work_schedule_id TEXT,
		full_name TEXT, dob DATE, phone_number TEXT, address TEXT, base_salary NUMERIC(15,2),
		employment_status TEXT, deleted_at TIMESTAMPTZ
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE attendances (
		id TEXT PRIMARY KEY, employee_id TEXT, date DATE,
		clock_in TIMESTAMPTZ, clock_out TIMESTAMPTZ,
		clock_in_latitude FLOAT8, clock_in_longitude FLOAT8,
		clock_out_latitude FLOAT8, clock_out_longitude FLOAT8,
		status TEXT, created_at TIMESTAMPTZ DEFAULT now()
	) ON COMMIT DROP`,
}

// withTestTx connects to TEST_DATABASE_URL, opens a transaction with the
// temporary schema and seed rows, and rolls it back when the test ends.
// The test is skipped when no database is configured.
func withTestTx(t *testing.T, seed ...string) (context.Context, *database.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, 4)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback(context.Background()) })

	for _, stmt := range append(schema, seed...) {
		_, err := tx.Exec(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	return postgresql.WithTx(ctx, tx), db
}
