// Package testutil connects integration tests to a disposable Postgres database named by
// TEST_POSTGRES_DSN. Tests skip when the variable is unset.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/practicum/internal/app/migrations"
	"github.com/yigit/practicum/internal/db"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce   sync.Once
	database *db.PostgresDB
	dbErr    error
)

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// DB returns the shared migrated test database
func DB(tb testing.TB) *db.PostgresDB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			dbErr = err
			return
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			dbErr = err
			return
		}

		if err := migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, migrationsDir()); err != nil {
			pool.Close()
			dbErr = err
			return
		}
		database = &db.PostgresDB{Pool: pool}
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return database
}

// Reset empties every application table and restarts the id sequences
func Reset(tb testing.TB, d *db.PostgresDB) {
	tb.Helper()
	_, err := d.Pool.Exec(context.Background(), `
		TRUNCATE users, student_groups, practice_location, practice_organization, roles
		RESTART IDENTITY CASCADE`)
	if err != nil {
		tb.Fatalf("reset test db: %v", err)
	}
}

// Fixture names the rows created by Seed
type Fixture struct {
	LocationID     int64
	PracticeID     int64
	GroupID        int64
	OtherGroupID   int64
	UserID         int64
	StudentID      int64
	OrganizationID int64
	PositionID     int64
	RoleID         int64
}

// Seed resets the database and inserts one student with the reference rows around it
func Seed(tb testing.TB, d *db.PostgresDB) Fixture {
	tb.Helper()
	Reset(tb, d)

	ctx := context.Background()
	var f Fixture
	steps := []struct {
		sql  string
		args []any
		dest *int64
	}{
		{`INSERT INTO practice_location (location) VALUES ('Kazan') RETURNING location_id`, nil, &f.LocationID},
		{`INSERT INTO student_groups (group_name) VALUES ('IT-21') RETURNING group_id`, nil, &f.GroupID},
		{`INSERT INTO student_groups (group_name) VALUES ('IT-22') RETURNING group_id`, nil, &f.OtherGroupID},
		{`INSERT INTO practice_organization (organization_name) VALUES ('Acme') RETURNING organization_id`, nil, &f.OrganizationID},
		{`INSERT INTO roles (role_name) VALUES ('Mentor') RETURNING role_id`, nil, &f.RoleID},
		{`INSERT INTO users (username, password, full_name) VALUES ('ivanov', 'x', 'Ivan Ivanov') RETURNING user_id`, nil, &f.UserID},
	}
	for _, s := range steps {
		if err := d.Pool.QueryRow(ctx, s.sql, s.args...).Scan(s.dest); err != nil {
			tb.Fatalf("seed %q: %v", s.sql, err)
		}
	}

	dependent := []struct {
		sql  string
		args []any
		dest *int64
	}{
		{`INSERT INTO practice (start_date, end_date, location_id) VALUES ('2024-09-01', '2024-12-20', $1) RETURNING practice_id`, []any{f.LocationID}, &f.PracticeID},
		{`INSERT INTO user_position (position_name, organization_id) VALUES ('Engineer', $1) RETURNING position_id`, []any{f.OrganizationID}, &f.PositionID},
	}
	for _, s := range dependent {
		if err := d.Pool.QueryRow(ctx, s.sql, s.args...).Scan(s.dest); err != nil {
			tb.Fatalf("seed %q: %v", s.sql, err)
		}
	}

	err := d.Pool.QueryRow(ctx,
		`INSERT INTO student (user_id, group_id, practice_id) VALUES ($1, $2, $3) RETURNING student_id`,
		f.UserID, f.GroupID, f.PracticeID,
	).Scan(&f.StudentID)
	if err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return f
}
