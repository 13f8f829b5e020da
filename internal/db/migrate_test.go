package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_CreatesTables(t *testing.T) {
	database := openTestDB(t)

	for _, table := range []string{"presets", "plans", "schedule_items"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	database := openTestDB(t)

	_, err := database.Exec(`INSERT INTO schedule_items
		(id, plan_id, position, title, start_time, end_time, type)
		VALUES ('i1', 'missing-plan', 0, 'X', '2026-01-05T09:00:00', '2026-01-05T10:00:00', 'FOCUS')`)
	assert.Error(t, err, "inserting an item for a missing plan must fail")
}

func TestMigrate_CascadeDeletesItems(t *testing.T) {
	database := openTestDB(t)

	_, err := database.Exec(`INSERT INTO plans
		(id, window_start, window_end, created_at, updated_at)
		VALUES ('p1', '2026-01-05T08:00:00', '2026-01-05T18:00:00', '2026-01-01T00:00:00', '2026-01-01T00:00:00')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO schedule_items
		(id, plan_id, position, title, start_time, end_time, type)
		VALUES ('i1', 'p1', 0, 'X', '2026-01-05T09:00:00', '2026-01-05T10:00:00', 'FOCUS')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM plans WHERE id = 'p1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schedule_items`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMigrate_RejectsUnknownBlockType(t *testing.T) {
	database := openTestDB(t)

	_, err := database.Exec(`INSERT INTO presets
		(id, name, duration_min, type, created_at)
		VALUES ('p1', 'Nap', 20, 'NAP', '2026-01-01T00:00:00')`)
	assert.Error(t, err)
}
