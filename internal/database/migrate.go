package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const migrationTable = "schema_migrations"

// migrationLockKey serialises concurrent migrators on the same database.
const migrationLockKey int64 = 0x63617461

// Migrate applies every .sql file in dir of migrationFS at most once, in
// lexical order, each in its own transaction.
func Migrate(ctx context.Context, db *sql.DB, migrationFS fs.FS, dir string) error {
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	var files []string

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)

	createSQL := `
		CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensuring migration table: %w", err)
	}

	for _, file := range files {
		content, err := fs.ReadFile(migrationFS, path.Join(dir, file))
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", file, err)
		}

		if err := applyMigration(ctx, db, file, ExtractUp(string(content))); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, name, upSQL string) error {
	dbTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %s: %w", name, err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
		return fmt.Errorf("acquiring migration lock: %w", err)
	}

	var applied bool

	err = dbTx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+migrationTable+` WHERE name = $1)`, name,
	).Scan(&applied)
	if err != nil {
		return fmt.Errorf("checking migration %s: %w", name, err)
	}

	if applied {
		return nil
	}

	if strings.TrimSpace(upSQL) != "" {
		if _, err := dbTx.ExecContext(ctx, upSQL); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	if _, err := dbTx.ExecContext(ctx,
		`INSERT INTO `+migrationTable+` (name) VALUES ($1)`, name,
	); err != nil {
		return fmt.Errorf("recording migration %s: %w", name, err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing migration %s: %w", name, err)
	}

	return nil
}

// ExtractUp returns the SQL in the "-- +migrate Up" section, or the whole
// content when the file has no sections.
func ExtractUp(content string) string {
	const upMarker, downMarker = "-- +migrate Up", "-- +migrate Down"

	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}

	rest := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(rest, downMarker); downIdx != -1 {
		return rest[:downIdx]
	}

	return rest
}
