package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; it must be a no-op.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"schedule_runs", "phase_records"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_schedule_runs_created",
		"idx_schedule_runs_scenario",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestOpenDB_BusyTimeout(t *testing.T) {
	db := openTestDB(t)

	var ms int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&ms))
	assert.Equal(t, 5000, ms)
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}

func TestMigrate_AddedColumns(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(schedule_runs)`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		found[name] = true
	}
	require.NoError(t, rows.Err())
	assert.True(t, found["label"], "schedule_runs table should have label column")
	assert.True(t, found["deadline_realigned"], "schedule_runs table should have deadline_realigned column")
}

func insertRun(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO schedule_runs (id, filing_date, scenario, statutory_limit, deadline, created_at)
		VALUES (?, '2025-03-03', 'general', 150, '2025-10-06', '2025-03-03T10:00:00Z')`, id)
	require.NoError(t, err)
}

func TestMigrate_PhaseRecordsCheckConstraints(t *testing.T) {
	db := openTestDB(t)
	insertRun(t, db, "r1")

	insert := `INSERT INTO phase_records (run_id, seq, key, start_date, end_date, next_start, duration, unit, clock_effect)
		VALUES ('r1', ?, 'a', '2025-03-03', '2025-03-04', '2025-03-04', ?, ?, ?)`

	_, err := db.Exec(insert, 0, 1, "working_day", "consumes_budget")
	require.NoError(t, err)

	_, err = db.Exec(insert, 1, 1, "hour", "consumes_budget")
	assert.Error(t, err, "unit outside the enum must be rejected")

	_, err = db.Exec(insert, 2, 1, "working_day", "pauses")
	assert.Error(t, err, "clock_effect outside the enum must be rejected")

	_, err = db.Exec(insert, 3, -1, "working_day", "consumes_budget")
	assert.Error(t, err, "negative duration must be rejected")

	_, err = db.Exec(insert, 0, 1, "working_day", "consumes_budget")
	assert.Error(t, err, "duplicate (run_id, seq) must be rejected")
}

func TestMigrate_PhaseRecordsCascadeOnRunDelete(t *testing.T) {
	db := openTestDB(t)
	insertRun(t, db, "r1")

	_, err := db.Exec(`INSERT INTO phase_records (run_id, seq, key, start_date, end_date, next_start, duration, unit, clock_effect)
		VALUES ('r1', 0, 'a', '2025-03-03', '2025-03-04', '2025-03-04', 1, 'working_day', 'consumes_budget')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM schedule_runs WHERE id = 'r1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM phase_records`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestMigrate_PhaseRecordsRequireRun(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO phase_records (run_id, seq, key, start_date, end_date, next_start, duration, unit, clock_effect)
		VALUES ('missing', 0, 'a', '2025-03-03', '2025-03-04', '2025-03-04', 1, 'working_day', 'consumes_budget')`)
	assert.Error(t, err)
}
