package calendar

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prazo/internal/domain"
)

// ErrOutOfRange matches any *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("date outside holiday coverage")

// OutOfRangeError is returned when a date falls outside the years the holiday
// set was computed for. Unknown years are never treated as holiday-free.
type OutOfRangeError struct {
	Date     domain.Date
	FromYear int
	ToYear   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("date %s outside holiday coverage %d-%d", e.Date, e.FromYear, e.ToYear)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
