package calendar

import (
	"fmt"

	"github.com/alexanderramin/prazo/internal/domain"
)

// NextWorkingDay returns d if it is a working day, otherwise the first
// working day after it.
func (c Config) NextWorkingDay(d domain.Date) (domain.Date, error) {
	for {
		ok, err := c.IsWorkingDay(d)
		if err != nil {
			return domain.Date{}, err
		}
		if ok {
			return d, nil
		}
		d = d.AddDays(1)
	}
}

// AddWorkingDays returns the n-th working day strictly after start. n = 0
// returns start unchanged, without realignment.
func (c Config) AddWorkingDays(start domain.Date, n int) (domain.Date, error) {
	return c.walk(start, n, 1)
}

// SubtractWorkingDays returns the n-th working day strictly before end. n = 0
// returns end unchanged.
func (c Config) SubtractWorkingDays(end domain.Date, n int) (domain.Date, error) {
	return c.walk(end, n, -1)
}

// AddCalendarDays is plain calendar addition; the Oracle is not consulted.
func (c Config) AddCalendarDays(start domain.Date, n int) (domain.Date, error) {
	if n < 0 {
		return domain.Date{}, fmt.Errorf("calendar day count must be >= 0 (got %d)", n)
	}
	return start.AddDays(n), nil
}

// CountWorkingDays returns the number of working days in (from, to]. It is
// zero when to is not after from.
func (c Config) CountWorkingDays(from, to domain.Date) (int, error) {
	n := 0
	for d := from.AddDays(1); !d.After(to); d = d.AddDays(1) {
		ok, err := c.IsWorkingDay(d)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// walk steps one calendar day at a time in direction step, counting only
// working days, until n have been passed. Termination is guaranteed by the
// pattern having at least one working weekday and the coverage bound.
func (c Config) walk(from domain.Date, n, step int) (domain.Date, error) {
	if n < 0 {
		return domain.Date{}, fmt.Errorf("working day count must be >= 0 (got %d)", n)
	}
	d := from
	for counted := 0; counted < n; {
		d = d.AddDays(step)
		ok, err := c.IsWorkingDay(d)
		if err != nil {
			return domain.Date{}, err
		}
		if ok {
			counted++
		}
	}
	return d, nil
}
