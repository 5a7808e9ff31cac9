package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_LabelsEveryDay(t *testing.T) {
	cal := portugalCalendar(t)
	s := domain.Scenario{
		Name:           "short",
		StatutoryLimit: 5,
		Phases: []domain.Phase{
			wd("check", 3, domain.ConsumesBudget),
			cd("clarification", 4, domain.SuspendsBudget),
		},
	}

	run, err := Build(cal, domain.MustParseDate("2025-06-06"), s)
	require.NoError(t, err)
	require.Equal(t, domain.MustParseDate("2025-06-18"), run.Deadline)

	entries, err := Ledger(cal, run)
	require.NoError(t, err)
	require.Len(t, entries, 12)

	type row struct {
		date    string
		kind    domain.DayKind
		phase   string
		counted bool
	}
	want := []row{
		{"2025-06-07", domain.DayWeekend, "check", false},
		{"2025-06-08", domain.DayWeekend, "check", false},
		{"2025-06-09", domain.DayWorking, "check", true},
		{"2025-06-10", domain.DayHoliday, "check", false},
		{"2025-06-11", domain.DayWorking, "check", true},
		{"2025-06-12", domain.DayWorking, "check", true},
		{"2025-06-13", domain.DaySuspended, "clarification", false},
		{"2025-06-14", domain.DaySuspended, "clarification", false},
		{"2025-06-15", domain.DaySuspended, "clarification", false},
		{"2025-06-16", domain.DaySuspended, "clarification", false},
		{"2025-06-17", domain.DayWorking, domain.TailPhaseKey, true},
		{"2025-06-18", domain.DayWorking, domain.TailPhaseKey, true},
	}
	for i, w := range want {
		e := entries[i]
		assert.Equal(t, w.date, e.Date.String(), "entry %d", i)
		assert.Equal(t, w.kind, e.Kind, "entry %d (%s)", i, w.date)
		assert.Equal(t, w.phase, e.Phase, "entry %d (%s)", i, w.date)
		assert.Equal(t, w.counted, e.Counted, "entry %d (%s)", i, w.date)
	}
	assert.NotEmpty(t, entries[3].Holiday)
	assert.Equal(t, 5, CountedDays(entries))
}

func TestLedger_RealignedDaysAreNotCounted(t *testing.T) {
	cal := explicitCalendar(t)
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

	entries, err := Ledger(cal, run)
	require.NoError(t, err)
	assert.Equal(t, run.FilingDate.DaysUntil(run.Deadline), len(entries))

	// Monday 21 July is the realigned cursor: outside the suspension and
	// before the appraisal starts counting.
	monday := entries[44]
	assert.Equal(t, "2025-07-21", monday.Date.String())
	assert.Equal(t, "response_window", monday.Phase)
	assert.Equal(t, domain.DayWorking, monday.Kind)
	assert.False(t, monday.Counted)

	assert.Equal(t, 5, CountedDays(entries))
}

func TestLedger_EmptyRun(t *testing.T) {
	_, err := Ledger(explicitCalendar(t), domain.ScheduleRun{})
	assert.Error(t, err)
}

// Counted days equal the consumed budget whenever every consuming phase
// counts working days.
func TestLedger_CountedDaysMatchConsumedBudget(t *testing.T) {
	cal := portugalCalendar(t)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		s := randomScenario(rng)
		for i := range s.Phases {
			if s.Phases[i].ClockEffect == domain.ConsumesBudget {
				s.Phases[i].Unit = domain.WorkingDay
			}
		}
		run, err := Build(cal, domain.MustParseDate("2025-01-01").AddDays(rng.Intn(365)), s)
		require.NoError(t, err, "trial %d", trial)

		entries, err := Ledger(cal, run)
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, run.FilingDate.DaysUntil(run.Deadline), len(entries), "trial %d", trial)
		assert.Equal(t, run.ConsumedBudget(), CountedDays(entries), "trial %d", trial)

		for i := 1; i < len(entries); i++ {
			assert.Equal(t, entries[i-1].Date.AddDays(1), entries[i].Date, "trial %d: ledger must be contiguous", trial)
		}
	}
}
