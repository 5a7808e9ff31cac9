package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id               TEXT PRIMARY KEY,
		filing_date      TEXT NOT NULL,
		scenario         TEXT NOT NULL,
		statutory_limit  INTEGER NOT NULL CHECK(statutory_limit > 0),
		deadline         TEXT NOT NULL,
		remaining_budget INTEGER NOT NULL DEFAULT 0,
		overrun          INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_runs_created ON schedule_runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_runs_scenario ON schedule_runs(scenario)`,

	`CREATE TABLE IF NOT EXISTS phase_records (
		run_id           TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		seq              INTEGER NOT NULL,
		key              TEXT NOT NULL,
		name             TEXT NOT NULL DEFAULT '',
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		next_start       TEXT NOT NULL,
		duration         INTEGER NOT NULL CHECK(duration >= 0),
		unit             TEXT NOT NULL
		                 CHECK(unit IN ('working_day','calendar_day')),
		clock_effect     TEXT NOT NULL
		                 CHECK(clock_effect IN ('consumes_budget','suspends_budget')),
		budget_overrun   INTEGER NOT NULL DEFAULT 0,
		remaining_budget INTEGER NOT NULL DEFAULT 0,
		synthetic        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, seq)
	)`,

	// Batch files name their filings; the label survives into the archive.
	`ALTER TABLE schedule_runs ADD COLUMN label TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE schedule_runs ADD COLUMN deadline_realigned INTEGER NOT NULL DEFAULT 0`,
}
