package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/prazo/internal/db"
	"github.com/alexanderramin/prazo/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database. Create writes
// several rows; call it with a DBTX from a unit of work.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

const runColumns = `id, label, filing_date, scenario, statutory_limit, deadline, remaining_budget, overrun, deadline_realigned, created_at`

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.ArchivedRun) error {
	if run.ID == "" {
		return fmt.Errorf("inserting schedule run: id is required")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = nowUTC()
	}

	query := `INSERT INTO schedule_runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Label,
		run.FilingDate.String(),
		run.Scenario,
		run.StatutoryLimit,
		run.Deadline.String(),
		run.RemainingBudget,
		boolToInt(run.Overrun),
		boolToInt(run.DeadlineRealigned),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule run: %w", err)
	}

	recQuery := `INSERT INTO phase_records (run_id, seq, key, name, start_date, end_date, next_start,
		duration, unit, clock_effect, budget_overrun, remaining_budget, synthetic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, rec := range run.Records {
		_, err := r.db.ExecContext(ctx, recQuery,
			run.ID,
			i,
			rec.Key,
			rec.Name,
			rec.StartDate.String(),
			rec.EndDate.String(),
			rec.NextStart.String(),
			rec.Duration,
			string(rec.Unit),
			string(rec.ClockEffect),
			boolToInt(rec.BudgetOverrun),
			rec.RemainingBudget,
			boolToInt(rec.Synthetic),
		)
		if err != nil {
			return fmt.Errorf("inserting phase record %q: %w", rec.Key, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.ArchivedRun, error) {
	query := `SELECT ` + runColumns + ` FROM schedule_runs WHERE id = ?`
	run, err := r.scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	records, err := r.listRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	run.Records = records
	return run, nil
}

func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]*domain.ArchivedRun, error) {
	query := `SELECT ` + runColumns + ` FROM schedule_runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ArchivedRun
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting schedule run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule run %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRunRepo) listRecords(ctx context.Context, runID string) ([]domain.PhaseRecord, error) {
	query := `SELECT key, name, start_date, end_date, next_start, duration, unit, clock_effect,
		budget_overrun, remaining_budget, synthetic
		FROM phase_records WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing phase records: %w", err)
	}
	defer rows.Close()

	records := []domain.PhaseRecord{}
	for rows.Next() {
		var rec domain.PhaseRecord
		var startStr, endStr, nextStr, unitStr, effectStr string
		var overrun, synthetic int
		if err := rows.Scan(
			&rec.Key, &rec.Name,
			&startStr, &endStr, &nextStr,
			&rec.Duration, &unitStr, &effectStr,
			&overrun, &rec.RemainingBudget, &synthetic,
		); err != nil {
			return nil, fmt.Errorf("scanning phase record: %w", err)
		}

		if rec.StartDate, err = parseDate("start_date", startStr); err != nil {
			return nil, err
		}
		if rec.EndDate, err = parseDate("end_date", endStr); err != nil {
			return nil, err
		}
		if rec.NextStart, err = parseDate("next_start", nextStr); err != nil {
			return nil, err
		}
		rec.Unit = domain.Unit(unitStr)
		rec.ClockEffect = domain.ClockEffect(effectStr)
		rec.BudgetOverrun = intToBool(overrun)
		rec.Synthetic = intToBool(synthetic)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phase records: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun scans a schedule_runs header from a *sql.Row or *sql.Rows. A
// missing row comes back as sql.ErrNoRows, unwrapped.
func (r *SQLiteRunRepo) scanRun(row rowScanner) (*domain.ArchivedRun, error) {
	var run domain.ArchivedRun
	var filingStr, deadlineStr, createdAtStr string
	var overrun, realigned int

	err := row.Scan(
		&run.ID, &run.Label,
		&filingStr, &run.Scenario, &run.StatutoryLimit,
		&deadlineStr, &run.RemainingBudget, &overrun, &realigned,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}

	if run.FilingDate, err = parseDate("filing_date", filingStr); err != nil {
		return nil, err
	}
	if run.Deadline, err = parseDate("deadline", deadlineStr); err != nil {
		return nil, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	run.Overrun = intToBool(overrun)
	run.DeadlineRealigned = intToBool(realigned)

	return &run, nil
}
