package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS presets (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		duration_min  INTEGER NOT NULL CHECK(duration_min > 0),
		type          TEXT NOT NULL
		              CHECK(type IN ('FOCUS','BREAK','ROUTINE','SOCIAL','ADMIN')),
		default_title TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		window_start TEXT NOT NULL,
		window_end   TEXT NOT NULL,
		tasks        TEXT NOT NULL DEFAULT '',
		preferences  TEXT NOT NULL DEFAULT '',
		summary      TEXT NOT NULL DEFAULT '',
		feedback     TEXT NOT NULL DEFAULT '',
		suggestions  TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_items (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL DEFAULT 0,
		title       TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		type        TEXT NOT NULL
		            CHECK(type IN ('FOCUS','BREAK','ROUTINE','SOCIAL','ADMIN')),
		description TEXT NOT NULL DEFAULT '',
		notes       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_items_plan ON schedule_items(plan_id)`,
}
