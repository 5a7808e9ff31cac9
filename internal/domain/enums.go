package domain

type Unit string

const (
	WorkingDay  Unit = "working_day"
	CalendarDay Unit = "calendar_day"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u == WorkingDay || u == CalendarDay
}

type ClockEffect string

const (
	ConsumesBudget ClockEffect = "consumes_budget"
	SuspendsBudget ClockEffect = "suspends_budget"
)

// Valid reports whether c is one of the known clock effects.
func (c ClockEffect) Valid() bool {
	return c == ConsumesBudget || c == SuspendsBudget
}

// DayKind classifies a single calendar day.
type DayKind string

const (
	DayWorking   DayKind = "working"
	DayWeekend   DayKind = "weekend"
	DayHoliday   DayKind = "holiday"
	DaySuspended DayKind = "suspended"
)

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[string]bool{
	string(WorkingDay): true, string(CalendarDay): true,
}

// ValidClockEffects is the canonical set of accepted clock effect strings.
var ValidClockEffects = map[string]bool{
	string(ConsumesBudget): true, string(SuspendsBudget): true,
}

// TailPhaseKey identifies the synthetic phase appended when explicit phases
// leave statutory budget unspent.
const TailPhaseKey = "remaining_statutory_period"
