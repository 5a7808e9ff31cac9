package scheduler

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/holidays"
	"github.com/alexanderramin/prazo/internal/scenario"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portugalCalendar(t *testing.T) calendar.Config {
	t.Helper()
	cfg, err := holidays.BuildConfig(context.Background(), holidays.Portugal{}, calendar.MondayToFriday, 2025, 2027)
	require.NoError(t, err)
	return cfg
}

func explicitCalendar(t *testing.T, dates ...string) calendar.Config {
	t.Helper()
	set := calendar.HolidaySet{}
	for _, d := range dates {
		set[domain.MustParseDate(d)] = "holiday"
	}
	cfg, err := calendar.NewConfig(calendar.MondayToFriday, set, 2025, 2026)
	require.NoError(t, err)
	return cfg
}

func builtin(t *testing.T, name string) domain.Scenario {
	t.Helper()
	r, err := scenario.NewRegistry(scenario.Builtin()...)
	require.NoError(t, err)
	s, err := r.Get(name)
	require.NoError(t, err)
	return s
}

func wd(key string, days int, effect domain.ClockEffect) domain.Phase {
	return domain.Phase{Key: key, Name: key, Duration: days, Unit: domain.WorkingDay, ClockEffect: effect}
}

func cd(key string, days int, effect domain.ClockEffect) domain.Phase {
	return domain.Phase{Key: key, Name: key, Duration: days, Unit: domain.CalendarDay, ClockEffect: effect}
}

func TestBuild_CalendarSuspensionEndingSundayRealignsToMonday(t *testing.T) {
	cal := explicitCalendar(t)
	friday := domain.MustParseDate("2025-06-06")
	s := domain.Scenario{
		Name:           "realign",
		StatutoryLimit: 5,
		Phases: []domain.Phase{
			cd("response_window", 44, domain.SuspendsBudget),
			wd("appraisal", 5, domain.ConsumesBudget),
		},
	}

	run, err := Build(cal, friday, s)
	require.NoError(t, err)
	require.Len(t, run.Records, 2)

	suspension := run.Records[0]
	assert.Equal(t, time.Sunday, suspension.EndDate.Weekday())
	assert.Equal(t, domain.MustParseDate("2025-07-21"), suspension.NextStart)
	assert.True(t, suspension.Realigned())
	assert.Equal(t, 5, suspension.RemainingBudget, "suspension must not touch the budget")

	assert.Equal(t, suspension.NextStart, run.Records[1].StartDate)
	assert.Equal(t, domain.MustParseDate("2025-07-28"), run.Deadline)
}

func TestBuild_CalendarSuspensionSkipsMondayHoliday(t *testing.T) {
	cal := explicitCalendar(t, "2025-07-21")
	s := domain.Scenario{
		Name:           "realign",
		StatutoryLimit: 5,
		Phases: []domain.Phase{
			cd("response_window", 44, domain.SuspendsBudget),
			wd("appraisal", 5, domain.ConsumesBudget),
		},
	}

	run, err := Build(cal, domain.MustParseDate("2025-06-06"), s)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-07-22"), run.Records[0].NextStart)
	assert.Equal(t, domain.MustParseDate("2025-07-22"), run.Records[1].StartDate)
}

func TestBuild_CalendarToCalendarDoesNotRealign(t *testing.T) {
	cal := explicitCalendar(t)
	s := domain.Scenario{
		Name:           "chained",
		StatutoryLimit: 1,
		Phases: []domain.Phase{
			cd("first", 44, domain.SuspendsBudget),
			cd("second", 7, domain.SuspendsBudget),
			wd("decision", 1, domain.ConsumesBudget),
		},
	}

	run, err := Build(cal, domain.MustParseDate("2025-06-06"), s)
	require.NoError(t, err)
	assert.False(t, run.Records[0].Realigned())
	assert.Equal(t, run.Records[0].EndDate, run.Records[1].StartDate)
	assert.Equal(t, domain.MustParseDate("2025-07-27"), run.Records[1].EndDate)
	assert.Equal(t, domain.MustParseDate("2025-07-28"), run.Records[1].NextStart)
}

func TestBuild_GeneralTrackTailAndMilestone(t *testing.T) {
	cal := portugalCalendar(t)
	filing := domain.MustParseDate("2025-01-07")
	s := builtin(t, "general")

	run, err := Build(cal, filing, s)
	require.NoError(t, err)

	tail, ok := run.Tail()
	require.True(t, ok)
	assert.Equal(t, domain.TailPhaseKey, tail.Key)
	assert.Equal(t, 40, tail.Duration)
	assert.Equal(t, domain.WorkingDay, tail.Unit)
	assert.Equal(t, domain.ConsumesBudget, tail.ClockEffect)

	want, err := cal.AddWorkingDays(tail.StartDate, 40)
	require.NoError(t, err)
	assert.Equal(t, want, run.Deadline)
	assert.Equal(t, 150, run.ConsumedBudget())
	assert.Equal(t, 0, run.RemainingBudget)
	assert.False(t, run.Overrun)

	milestone, err := MilestoneBefore(cal, run.Deadline, 40)
	require.NoError(t, err)
	assert.Equal(t, tail.StartDate, milestone)
}

func TestBuild_IndustrialPriorHearingSuspends(t *testing.T) {
	cal := portugalCalendar(t)
	run, err := Build(cal, domain.MustParseDate("2025-02-03"), builtin(t, "industrial"))
	require.NoError(t, err)

	hearing, ok := run.Record(scenario.PhasePriorHearing)
	require.True(t, ok)
	assert.Equal(t, domain.SuspendsBudget, hearing.ClockEffect)

	tail, ok := run.Tail()
	require.True(t, ok)
	assert.Equal(t, 20, tail.Duration)
	assert.Equal(t, hearing.RemainingBudget, tail.Duration)
}

func TestBuild_BudgetOverrunIsFlaggedNotFatal(t *testing.T) {
	cal := explicitCalendar(t)
	s := domain.Scenario{
		Name:           "tight",
		StatutoryLimit: 10,
		Phases: []domain.Phase{
			wd("a", 8, domain.ConsumesBudget),
			wd("b", 5, domain.ConsumesBudget),
			wd("c", 0, domain.ConsumesBudget),
			wd("d", 2, domain.SuspendsBudget),
		},
	}

	run, err := Build(cal, domain.MustParseDate("2025-03-03"), s)
	require.NoError(t, err)
	require.Len(t, run.Records, 4, "no tail when the budget is exhausted")

	assert.False(t, run.Records[0].BudgetOverrun)
	assert.True(t, run.Records[1].BudgetOverrun)
	assert.Equal(t, -3, run.Records[1].RemainingBudget)
	assert.False(t, run.Records[2].BudgetOverrun, "zero-length phases do not deepen an overrun")
	assert.False(t, run.Records[3].BudgetOverrun, "suspensions never overrun")

	assert.True(t, run.Overrun)
	assert.Equal(t, -3, run.RemainingBudget)
	assert.Equal(t, 13, run.ConsumedBudget())
	_, hasTail := run.Tail()
	assert.False(t, hasTail)
}

func TestBuild_ExactBudgetHasNoTail(t *testing.T) {
	cal := explicitCalendar(t)
	s := domain.Scenario{
		Name:           "exact",
		StatutoryLimit: 10,
		Phases:         []domain.Phase{wd("a", 10, domain.ConsumesBudget)},
	}

	run, err := Build(cal, domain.MustParseDate("2025-03-03"), s)
	require.NoError(t, err)
	require.Len(t, run.Records, 1)
	assert.Equal(t, run.Records[0].EndDate, run.Deadline)
	assert.Equal(t, 0, run.RemainingBudget)
	assert.False(t, run.DeadlineRealigned)
}

func TestBuild_TrailingSuspensionRealignsDeadline(t *testing.T) {
	cal := explicitCalendar(t)
	s := domain.Scenario{
		Name:           "trailing",
		StatutoryLimit: 5,
		Phases: []domain.Phase{
			wd("a", 5, domain.ConsumesBudget),
			cd("b", 2, domain.SuspendsBudget),
		},
	}

	// a ends Friday 13 June; b ends Sunday 15 June.
	run, err := Build(cal, domain.MustParseDate("2025-06-06"), s)
	require.NoError(t, err)

	last := run.Records[1]
	assert.Equal(t, domain.MustParseDate("2025-06-15"), last.EndDate)
	assert.False(t, last.Realigned(), "nothing follows, so the record itself is not realigned")
	assert.Equal(t, domain.MustParseDate("2025-06-16"), run.Deadline)
	assert.True(t, run.DeadlineRealigned)
	assert.NotEqual(t, last.NextStart, run.Deadline)
}

func TestBuild_ZeroDurationKeepsCursor(t *testing.T) {
	cal := explicitCalendar(t)
	saturday := domain.MustParseDate("2025-06-07")
	s := domain.Scenario{
		Name:           "zero",
		StatutoryLimit: 1,
		Phases: []domain.Phase{
			wd("noop", 0, domain.ConsumesBudget),
			cd("noop_calendar", 0, domain.SuspendsBudget),
		},
	}

	run, err := Build(cal, saturday, s)
	require.NoError(t, err)

	assert.Equal(t, saturday, run.Records[0].EndDate)
	assert.Equal(t, saturday, run.Records[1].EndDate)
	// The calendar phase is followed by the working-day tail, so it realigns.
	assert.Equal(t, domain.MustParseDate("2025-06-09"), run.Records[1].NextStart)
	assert.Equal(t, domain.MustParseDate("2025-06-10"), run.Deadline)
}

func TestBuild_InvalidScenarioRejectedBeforeArithmetic(t *testing.T) {
	cal := explicitCalendar(t)
	s := domain.Scenario{
		Name:           "bad",
		StatutoryLimit: 10,
		Phases:         []domain.Phase{wd("a", -1, domain.ConsumesBudget)},
	}

	// The filing date lies outside coverage: validation must win.
	_, err := Build(cal, domain.MustParseDate("2030-01-01"), s)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	assert.False(t, errors.Is(err, calendar.ErrOutOfRange))

	_, err = Build(cal, domain.MustParseDate("2025-01-01"), domain.Scenario{Name: "empty", StatutoryLimit: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)

	_, err = Build(cal, domain.MustParseDate("2025-01-01"), domain.Scenario{Name: "nolimit", Phases: []domain.Phase{wd("a", 1, domain.ConsumesBudget)}})
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestBuild_RequiresFilingDate(t *testing.T) {
	_, err := Build(explicitCalendar(t), domain.Date{}, builtin(t, "general"))
	assert.Error(t, err)
}

func TestBuild_OutOfRangePropagates(t *testing.T) {
	cal := portugalCalendar(t)
	_, err := Build(cal, domain.MustParseDate("2027-09-01"), builtin(t, "general"))
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestBuild_Deterministic(t *testing.T) {
	cal := portugalCalendar(t)
	s := builtin(t, "general")
	filing := domain.MustParseDate("2025-05-02")

	first, err := Build(cal, filing, s)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Build(cal, filing, s)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again, cmp.AllowUnexported(domain.Date{})); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestMilestoneBefore(t *testing.T) {
	cal := explicitCalendar(t, "2025-06-10")

	got, err := MilestoneBefore(cal, domain.MustParseDate("2025-06-12"), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-06"), got)

	got, err = MilestoneBefore(cal, domain.MustParseDate("2025-06-12"), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-12"), got)

	_, err = MilestoneBefore(cal, domain.MustParseDate("2025-01-02"), 5)
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func randomScenario(rng *rand.Rand) domain.Scenario {
	n := rng.Intn(6) + 1
	s := domain.Scenario{Name: "random", StatutoryLimit: rng.Intn(150) + 1}
	for i := 0; i < n; i++ {
		p := domain.Phase{
			Key:         "p" + string(rune('a'+i)),
			Duration:    rng.Intn(40),
			Unit:        domain.WorkingDay,
			ClockEffect: domain.ConsumesBudget,
		}
		if rng.Intn(3) == 0 {
			p.Unit = domain.CalendarDay
		}
		if rng.Intn(3) == 0 {
			p.ClockEffect = domain.SuspendsBudget
		}
		s.Phases = append(s.Phases, p)
	}
	return s
}

// TestBuild_Invariants property-tests monotonicity, realignment and budget
// conservation over random scenarios.
func TestBuild_Invariants(t *testing.T) {
	cal := portugalCalendar(t)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		s := randomScenario(rng)
		filing := domain.MustParseDate("2025-01-01").AddDays(rng.Intn(365))

		run, err := Build(cal, filing, s)
		require.NoError(t, err, "trial %d", trial)

		cursor := filing
		for i, rec := range run.Records {
			assert.Equal(t, cursor, rec.StartDate, "trial %d record %d: start must equal previous cursor", trial, i)
			assert.False(t, rec.EndDate.Before(rec.StartDate), "trial %d record %d: end before start", trial, i)
			assert.False(t, rec.NextStart.Before(rec.EndDate), "trial %d record %d: cursor moved backwards", trial, i)
			if rec.Realigned() {
				want, err := cal.NextWorkingDay(rec.EndDate)
				require.NoError(t, err)
				assert.Equal(t, want, rec.NextStart, "trial %d record %d", trial, i)
				assert.Equal(t, domain.CalendarDay, rec.Unit, "trial %d record %d: only calendar phases realign", trial, i)
			}
			cursor = rec.NextStart
		}

		ok, err := cal.IsWorkingDay(run.Deadline)
		require.NoError(t, err)
		assert.True(t, ok, "trial %d: deadline %s must be a working day", trial, run.Deadline)
		assert.False(t, run.Deadline.Before(cursor), "trial %d", trial)

		_, hasTail := run.Tail()
		consumed := run.ConsumedBudget()
		if run.Overrun {
			assert.Greater(t, consumed, s.StatutoryLimit, "trial %d", trial)
			assert.False(t, hasTail, "trial %d: overrun runs have no tail", trial)
		} else {
			assert.Equal(t, s.StatutoryLimit, consumed, "trial %d: budget conservation", trial)
		}
	}
}
