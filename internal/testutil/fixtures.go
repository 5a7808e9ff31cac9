package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/holidays"
	"github.com/google/uuid"
)

// Calendar returns the Portuguese national calendar, Monday to Friday, for
// 2024 through 2030.
func Calendar(t *testing.T) calendar.Config {
	t.Helper()
	cfg, err := holidays.BuildConfig(context.Background(), holidays.Portugal{}, calendar.MondayToFriday, 2024, 2030)
	if err != nil {
		t.Fatalf("building test calendar: %v", err)
	}
	return cfg
}

// Scenario options
type ScenarioOption func(*domain.Scenario)

func WithStatutoryLimit(n int) ScenarioOption {
	return func(s *domain.Scenario) {
		s.StatutoryLimit = n
	}
}

func WithPhase(key string, duration int, unit domain.Unit, effect domain.ClockEffect) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Phases = append(s.Phases, domain.Phase{
			Key:         key,
			Name:        key,
			Duration:    duration,
			Unit:        unit,
			ClockEffect: effect,
		})
	}
}

// NewTestScenario returns a valid scenario. Without WithPhase options it has
// a single 10 working-day consuming phase against a limit of 30.
func NewTestScenario(name string, opts ...ScenarioOption) *domain.Scenario {
	s := &domain.Scenario{
		Name:           name,
		Title:          name,
		StatutoryLimit: 30,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.Phases) == 0 {
		WithPhase("check", 10, domain.WorkingDay, domain.ConsumesBudget)(s)
	}
	return s
}

// Run options
type RunOption func(*domain.ArchivedRun)

func WithLabel(label string) RunOption {
	return func(r *domain.ArchivedRun) {
		r.Label = label
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.ArchivedRun) {
		r.CreatedAt = t.UTC().Truncate(time.Second)
	}
}

func WithOverrun(remaining int) RunOption {
	return func(r *domain.ArchivedRun) {
		r.RemainingBudget = remaining
		r.Overrun = remaining < 0
	}
}

// NewTestRun returns an archived run with two records: a consuming
// working-day phase and the synthetic tail.
func NewTestRun(scenarioName string, opts ...RunOption) *domain.ArchivedRun {
	r := &domain.ArchivedRun{
		ScheduleRun: domain.ScheduleRun{
			ID:             uuid.New().String(),
			FilingDate:     domain.MustParseDate("2025-03-03"),
			Scenario:       scenarioName,
			StatutoryLimit: 30,
			Deadline:       domain.MustParseDate("2025-04-14"),
			Records: []domain.PhaseRecord{
				{
					Key:             "check",
					Name:            "check",
					StartDate:       domain.MustParseDate("2025-03-03"),
					EndDate:         domain.MustParseDate("2025-03-17"),
					NextStart:       domain.MustParseDate("2025-03-17"),
					Duration:        10,
					Unit:            domain.WorkingDay,
					ClockEffect:     domain.ConsumesBudget,
					RemainingBudget: 20,
				},
				{
					Key:         domain.TailPhaseKey,
					Name:        "Prazo remanescente",
					StartDate:   domain.MustParseDate("2025-03-17"),
					EndDate:     domain.MustParseDate("2025-04-14"),
					NextStart:   domain.MustParseDate("2025-04-14"),
					Duration:    20,
					Unit:        domain.WorkingDay,
					ClockEffect: domain.ConsumesBudget,
					Synthetic:   true,
				},
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
