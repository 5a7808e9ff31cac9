package calendar

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	midJune   = domain.MustParseDate("2025-06-10") // Tuesday
	christmas = domain.MustParseDate("2025-12-25") // Thursday
	newYear   = domain.MustParseDate("2026-01-01") // Thursday
)

func testConfig(t *testing.T, extra ...domain.Date) Config {
	t.Helper()
	set := HolidaySet{
		midJune:   "Dia de Portugal",
		christmas: "Natal",
		newYear:   "Ano Novo",
	}
	for _, d := range extra {
		set[d] = "extra"
	}
	cfg, err := NewConfig(MondayToFriday, set, 2024, 2027)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_RejectsEmptyPattern(t *testing.T) {
	_, err := NewConfig(WeeklyPattern{}, nil, 2025, 2025)
	assert.ErrorIs(t, err, ErrNoWorkingDays)
}

func TestNewConfig_RejectsHolidayOutsideCoverage(t *testing.T) {
	_, err := NewConfig(MondayToFriday, HolidaySet{newYear: "Ano Novo"}, 2025, 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside coverage 2025-2025")
}

func TestNewConfig_RejectsInvertedCoverage(t *testing.T) {
	_, err := NewConfig(MondayToFriday, nil, 2026, 2025)
	assert.Error(t, err)
}

func TestNewConfig_CopiesHolidaySet(t *testing.T) {
	set := HolidaySet{midJune: "Dia de Portugal"}
	cfg, err := NewConfig(MondayToFriday, set, 2025, 2025)
	require.NoError(t, err)

	delete(set, midJune)
	ok, err := cfg.IsWorkingDay(midJune)
	require.NoError(t, err)
	assert.False(t, ok, "mutating the caller's set must not change the calendar")
}

func TestIsWorkingDay(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		date string
		want bool
	}{
		{"2025-06-09", true},  // Monday
		{"2025-06-10", false}, // holiday on a Tuesday
		{"2025-06-14", false}, // Saturday
		{"2025-06-15", false}, // Sunday
		{"2025-12-25", false},
		{"2025-12-26", true},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := cfg.IsWorkingDay(domain.MustParseDate(tt.date))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	saturdayHoliday := domain.MustParseDate("2025-06-14")
	cfg := testConfig(t, saturdayHoliday)

	kind, err := cfg.Classify(domain.MustParseDate("2025-06-09"))
	require.NoError(t, err)
	assert.Equal(t, domain.DayWorking, kind)

	kind, err = cfg.Classify(domain.MustParseDate("2025-06-15"))
	require.NoError(t, err)
	assert.Equal(t, domain.DayWeekend, kind)

	kind, err = cfg.Classify(midJune)
	require.NoError(t, err)
	assert.Equal(t, domain.DayHoliday, kind)
	assert.Equal(t, "Dia de Portugal", cfg.HolidayName(midJune))

	// Holiday wins the label over weekend.
	kind, err = cfg.Classify(saturdayHoliday)
	require.NoError(t, err)
	assert.Equal(t, domain.DayHoliday, kind)
}

func TestOutOfRange(t *testing.T) {
	cfg := testConfig(t)

	_, err := cfg.IsWorkingDay(domain.MustParseDate("2028-01-03"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 2024, oor.FromYear)
	assert.Equal(t, 2027, oor.ToYear)

	// A walk that crosses the coverage boundary fails instead of guessing.
	_, err = cfg.AddWorkingDays(domain.MustParseDate("2027-12-20"), 30)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, domain.MustParseDate("2028-01-01"), oor.Date)

	_, err = cfg.NextWorkingDay(domain.MustParseDate("2023-12-31"))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAddWorkingDays_TuesdaySkipsOneWeekend(t *testing.T) {
	cfg := testConfig(t)
	filing := domain.MustParseDate("2025-03-04") // Tuesday

	got, err := cfg.AddWorkingDays(filing, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, filing.DaysUntil(got))
	assert.Equal(t, domain.MustParseDate("2025-03-11"), got)
}

func TestAddWorkingDays_SkipsHoliday(t *testing.T) {
	cfg := testConfig(t)

	got, err := cfg.AddWorkingDays(domain.MustParseDate("2025-06-09"), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-11"), got)

	got, err = cfg.AddWorkingDays(domain.MustParseDate("2025-12-24"), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-12-29"), got)
}

func TestAddWorkingDays_ZeroReturnsStartUnchanged(t *testing.T) {
	cfg := testConfig(t)
	sunday := domain.MustParseDate("2025-06-15")

	got, err := cfg.AddWorkingDays(sunday, 0)
	require.NoError(t, err)
	assert.Equal(t, sunday, got)
}

func TestWorkingDayArithmetic_RejectsNegativeCounts(t *testing.T) {
	cfg := testConfig(t)
	d := domain.MustParseDate("2025-06-09")

	_, err := cfg.AddWorkingDays(d, -1)
	assert.Error(t, err)
	_, err = cfg.SubtractWorkingDays(d, -1)
	assert.Error(t, err)
	_, err = cfg.AddCalendarDays(d, -1)
	assert.Error(t, err)
}

func TestSubtractWorkingDays(t *testing.T) {
	cfg := testConfig(t)

	got, err := cfg.SubtractWorkingDays(domain.MustParseDate("2025-06-11"), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-09"), got, "must skip the holiday on the 10th")

	got, err = cfg.SubtractWorkingDays(domain.MustParseDate("2025-06-16"), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-13"), got, "must skip the weekend")
}

func TestNextWorkingDay(t *testing.T) {
	cfg := testConfig(t)

	got, err := cfg.NextWorkingDay(domain.MustParseDate("2025-06-09"))
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-06-09"), got)

	got, err = cfg.NextWorkingDay(domain.MustParseDate("2025-12-25"))
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-12-26"), got)

	got, err = cfg.NextWorkingDay(domain.MustParseDate("2025-12-27"))
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-12-29"), got)
}

func TestAddCalendarDays_IgnoresOracle(t *testing.T) {
	cfg := testConfig(t)

	got, err := cfg.AddCalendarDays(domain.MustParseDate("2025-06-06"), 44)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, got.Weekday())

	// Beyond coverage is fine for plain calendar addition.
	got, err = cfg.AddCalendarDays(domain.MustParseDate("2027-12-31"), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2028-01-01"), got)
}

func TestCountWorkingDays(t *testing.T) {
	cfg := testConfig(t)

	n, err := cfg.CountWorkingDays(domain.MustParseDate("2025-06-06"), domain.MustParseDate("2025-06-13"))
	require.NoError(t, err)
	assert.Equal(t, 4, n) // Mon 9, Wed 11, Thu 12, Fri 13

	n, err = cfg.CountWorkingDays(domain.MustParseDate("2025-06-13"), domain.MustParseDate("2025-06-06"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// A holiday on a Saturday changes nothing: the day was already excluded.
func TestSaturdayHolidayDoesNotChangeCounting(t *testing.T) {
	plain := testConfig(t)
	withSaturday := testConfig(t, domain.MustParseDate("2025-06-14"))
	start := domain.MustParseDate("2025-06-11")

	for n := 0; n <= 15; n++ {
		a, err := plain.AddWorkingDays(start, n)
		require.NoError(t, err)
		b, err := withSaturday.AddWorkingDays(start, n)
		require.NoError(t, err)
		assert.Equal(t, a, b, "n=%d", n)
	}
}

func TestParseWeeklyPattern(t *testing.T) {
	p, err := ParseWeeklyPattern("Mon,Tue,Wed,Thu,Fri")
	require.NoError(t, err)
	assert.Equal(t, MondayToFriday, p)
	assert.Equal(t, "Mon,Tue,Wed,Thu,Fri", p.String())

	p, err = ParseWeeklyPattern("sunday, sat")
	require.NoError(t, err)
	assert.Equal(t, 2, p.WorkingDays())

	_, err = ParseWeeklyPattern("Mon,Funday")
	assert.Error(t, err)

	_, err = ParseWeeklyPattern("")
	assert.ErrorIs(t, err, ErrNoWorkingDays)
}

func TestHolidaySet_Merge(t *testing.T) {
	a := HolidaySet{midJune: "a"}
	b := HolidaySet{midJune: "b", christmas: "Natal"}

	m := a.Merge(b)
	assert.Len(t, m, 2)
	assert.Equal(t, "b", m[midJune])
	assert.Equal(t, "a", a[midJune], "merge must not mutate the receiver")
}

func randomDate(rng *rand.Rand) domain.Date {
	return domain.MustParseDate("2025-01-01").AddDays(rng.Intn(365))
}

func TestArithmetic_Properties(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		d := randomDate(rng)
		n := rng.Intn(120)

		// Working-day closure for n >= 1.
		if n > 0 {
			got, err := cfg.AddWorkingDays(d, n)
			require.NoError(t, err)
			ok, err := cfg.IsWorkingDay(got)
			require.NoError(t, err)
			assert.True(t, ok, "trial %d: AddWorkingDays(%s, %d) = %s is not a working day", trial, d, n, got)
			assert.True(t, got.After(d), "trial %d: result must move forward", trial)
		}

		// Idempotence of realignment.
		once, err := cfg.NextWorkingDay(d)
		require.NoError(t, err)
		twice, err := cfg.NextWorkingDay(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "trial %d", trial)

		// Round trip from a working day.
		fwd, err := cfg.AddWorkingDays(once, n)
		require.NoError(t, err)
		back, err := cfg.SubtractWorkingDays(fwd, n)
		require.NoError(t, err)
		assert.Equal(t, once, back, "trial %d: round trip from %s by %d", trial, once, n)

		// Counting agrees with stepping.
		count, err := cfg.CountWorkingDays(once, fwd)
		require.NoError(t, err)
		assert.Equal(t, n, count, "trial %d", trial)
	}
}
