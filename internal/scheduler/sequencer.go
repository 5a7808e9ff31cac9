package scheduler

import (
	"fmt"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
)

// TailPhaseName labels the synthetic phase that spends leftover budget.
const TailPhaseName = "Prazo remanescente"

// Build walks the scenario's phases in order starting at filing, threading the
// current date and the remaining statutory budget through each phase, and
// returns the audit trail and the final deadline.
//
// Budget overruns are flagged on the offending records and never abort the
// run. Invalid scenarios and dates outside the calendar's coverage are
// returned as errors before or during the walk; no partial run is returned.
func Build(cal calendar.Config, filing domain.Date, s domain.Scenario) (domain.ScheduleRun, error) {
	if filing.IsZero() {
		return domain.ScheduleRun{}, fmt.Errorf("filing date is required")
	}
	if err := s.Validate(); err != nil {
		return domain.ScheduleRun{}, err
	}

	run := domain.ScheduleRun{
		FilingDate:     filing,
		Scenario:       s.Name,
		StatutoryLimit: s.StatutoryLimit,
		Records:        make([]domain.PhaseRecord, 0, len(s.Phases)+1),
	}

	// Known up front so the last explicit phase can realign for the tail.
	hasTail := s.ConsumedBudget() < s.StatutoryLimit

	cursor := filing
	remaining := s.StatutoryLimit
	for i, p := range s.Phases {
		next := domain.Unit("")
		switch {
		case i+1 < len(s.Phases):
			next = s.Phases[i+1].Unit
		case hasTail:
			next = domain.WorkingDay
		}

		rec, err := runPhase(cal, cursor, p, next)
		if err != nil {
			return domain.ScheduleRun{}, fmt.Errorf("phase %q: %w", p.Key, err)
		}

		if p.ClockEffect == domain.ConsumesBudget {
			remaining -= p.Duration
			rec.BudgetOverrun = remaining < 0 && p.Duration > 0
		}
		rec.RemainingBudget = remaining

		run.Records = append(run.Records, rec)
		cursor = rec.NextStart
	}

	if remaining > 0 {
		tail := domain.Phase{
			Key:         domain.TailPhaseKey,
			Name:        TailPhaseName,
			Duration:    remaining,
			Unit:        domain.WorkingDay,
			ClockEffect: domain.ConsumesBudget,
		}
		rec, err := runPhase(cal, cursor, tail, "")
		if err != nil {
			return domain.ScheduleRun{}, fmt.Errorf("phase %q: %w", tail.Key, err)
		}
		remaining = 0
		rec.Synthetic = true
		rec.RemainingBudget = remaining
		run.Records = append(run.Records, rec)
		cursor = rec.NextStart
	}

	// A statutory deadline never expires on a non-working day.
	deadline, err := cal.NextWorkingDay(cursor)
	if err != nil {
		return domain.ScheduleRun{}, fmt.Errorf("realigning deadline: %w", err)
	}

	run.Deadline = deadline
	run.DeadlineRealigned = deadline != cursor
	run.RemainingBudget = remaining
	run.Overrun = remaining < 0
	return run, nil
}

// runPhase computes one record. next is the unit of the phase that follows,
// or "" when none does.
func runPhase(cal calendar.Config, start domain.Date, p domain.Phase, next domain.Unit) (domain.PhaseRecord, error) {
	rec := domain.PhaseRecord{
		Key:         p.Key,
		Name:        p.Name,
		StartDate:   start,
		Duration:    p.Duration,
		Unit:        p.Unit,
		ClockEffect: p.ClockEffect,
	}

	var err error
	switch p.Unit {
	case domain.WorkingDay:
		rec.EndDate, err = cal.AddWorkingDays(start, p.Duration)
		if err != nil {
			return domain.PhaseRecord{}, err
		}
		rec.NextStart = rec.EndDate
	case domain.CalendarDay:
		rec.EndDate, err = cal.AddCalendarDays(start, p.Duration)
		if err != nil {
			return domain.PhaseRecord{}, err
		}
		rec.NextStart = rec.EndDate
		if next == domain.WorkingDay {
			rec.NextStart, err = cal.NextWorkingDay(rec.EndDate)
			if err != nil {
				return domain.PhaseRecord{}, err
			}
		}
	default:
		return domain.PhaseRecord{}, fmt.Errorf("unsupported unit %q", p.Unit)
	}
	return rec, nil
}
