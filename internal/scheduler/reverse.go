package scheduler

import (
	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
)

// MilestoneBefore returns the date n working days before terminal. It is used
// for sub-deadlines defined relative to the end of a procedure and shares no
// state with Build.
func MilestoneBefore(cal calendar.Config, terminal domain.Date, n int) (domain.Date, error) {
	return cal.SubtractWorkingDays(terminal, n)
}
