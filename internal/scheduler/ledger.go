package scheduler

import (
	"fmt"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
)

// Ledger expands a run into one entry per calendar day in
// (FilingDate, Deadline]. Each day belongs to the phase whose
// (StartDate, NextStart] range holds it; days after the last record up to a
// realigned deadline belong to the last record.
//
// Days of a suspending phase are labelled suspended. Counted marks the days
// that consumed statutory budget.
func Ledger(cal calendar.Config, run domain.ScheduleRun) ([]domain.DayEntry, error) {
	if len(run.Records) == 0 {
		return nil, fmt.Errorf("run has no phase records")
	}

	entries := make([]domain.DayEntry, 0, run.FilingDate.DaysUntil(run.Deadline))
	last := len(run.Records) - 1
	for i, rec := range run.Records {
		until := rec.NextStart
		if i == last && run.Deadline.After(until) {
			until = run.Deadline
		}
		for d := rec.StartDate.AddDays(1); !d.After(until); d = d.AddDays(1) {
			entry, err := ledgerEntry(cal, rec, d)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func ledgerEntry(cal calendar.Config, rec domain.PhaseRecord, d domain.Date) (domain.DayEntry, error) {
	kind, err := cal.Classify(d)
	if err != nil {
		return domain.DayEntry{}, err
	}
	entry := domain.DayEntry{
		Date:    d,
		Kind:    kind,
		Phase:   rec.Key,
		Holiday: cal.HolidayName(d),
	}

	inPhase := !d.After(rec.EndDate)
	if rec.ClockEffect == domain.SuspendsBudget {
		if inPhase {
			entry.Kind = domain.DaySuspended
		}
		return entry, nil
	}

	switch rec.Unit {
	case domain.WorkingDay:
		entry.Counted = inPhase && kind == domain.DayWorking
	case domain.CalendarDay:
		entry.Counted = inPhase
	}
	return entry, nil
}

// CountedDays returns the number of ledger entries that consumed budget.
func CountedDays(entries []domain.DayEntry) int {
	n := 0
	for _, e := range entries {
		if e.Counted {
			n++
		}
	}
	return n
}
