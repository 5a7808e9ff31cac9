package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/prazo/internal/domain"
)

// WeeklyPattern marks which weekdays are eligible as working days, indexed
// by time.Weekday.
type WeeklyPattern [7]bool

// MondayToFriday is the pattern used by every observed jurisdiction.
var MondayToFriday = WeeklyPattern{
	time.Sunday:    false,
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  false,
}

// Works reports whether wd is a working weekday under p.
func (p WeeklyPattern) Works(wd time.Weekday) bool {
	return p[wd]
}

// WorkingDays counts the working weekdays in p.
func (p WeeklyPattern) WorkingDays() int {
	n := 0
	for _, ok := range p {
		if ok {
			n++
		}
	}
	return n
}

func (p WeeklyPattern) String() string {
	var names []string
	for wd, ok := range p {
		if ok {
			names = append(names, time.Weekday(wd).String()[:3])
		}
	}
	return strings.Join(names, ",")
}

// ParseWeeklyPattern accepts a comma separated list of three letter English
// weekday names, e.g. "Mon,Tue,Wed,Thu,Fri".
func ParseWeeklyPattern(s string) (WeeklyPattern, error) {
	var p WeeklyPattern
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found := false
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.EqualFold(part, wd.String()[:3]) || strings.EqualFold(part, wd.String()) {
				p[wd] = true
				found = true
				break
			}
		}
		if !found {
			return WeeklyPattern{}, fmt.Errorf("unknown weekday %q", part)
		}
	}
	if p.WorkingDays() == 0 {
		return WeeklyPattern{}, ErrNoWorkingDays
	}
	return p, nil
}

// HolidaySet maps exact dates to a human readable name.
type HolidaySet map[domain.Date]string

// Contains reports whether d is a holiday.
func (h HolidaySet) Contains(d domain.Date) bool {
	_, ok := h[d]
	return ok
}

// Merge returns a new set holding the union of h and other. Names from other
// win on collision.
func (h HolidaySet) Merge(other HolidaySet) HolidaySet {
	out := make(HolidaySet, len(h)+len(other))
	for d, name := range h {
		out[d] = name
	}
	for d, name := range other {
		out[d] = name
	}
	return out
}

// ErrNoWorkingDays is returned when a weekly pattern has no working weekday,
// which would make every forward or backward walk diverge.
var ErrNoWorkingDays = errors.New("weekly pattern must contain at least one working day")

// Config is the explicit calendar value passed to every Oracle and arithmetic
// call: a weekly pattern, a holiday set and the inclusive year range the set
// was computed for.
type Config struct {
	pattern  WeeklyPattern
	holidays HolidaySet
	fromYear int
	toYear   int
}

// NewConfig validates its inputs and returns a Config. The holiday set is
// copied so later mutation by the caller cannot change the calendar. Holidays
// outside [fromYear, toYear] are rejected.
func NewConfig(pattern WeeklyPattern, holidays HolidaySet, fromYear, toYear int) (Config, error) {
	if pattern.WorkingDays() == 0 {
		return Config{}, ErrNoWorkingDays
	}
	if fromYear > toYear {
		return Config{}, fmt.Errorf("invalid coverage: from year %d is after to year %d", fromYear, toYear)
	}
	set := make(HolidaySet, len(holidays))
	for d, name := range holidays {
		if d.Year() < fromYear || d.Year() > toYear {
			return Config{}, fmt.Errorf("holiday %s (%s) lies outside coverage %d-%d", d, name, fromYear, toYear)
		}
		set[d] = name
	}
	return Config{pattern: pattern, holidays: set, fromYear: fromYear, toYear: toYear}, nil
}

// Pattern returns the weekly pattern.
func (c Config) Pattern() WeeklyPattern { return c.pattern }

// Coverage returns the inclusive year range the calendar can answer for.
func (c Config) Coverage() (fromYear, toYear int) { return c.fromYear, c.toYear }

// Covers reports whether d lies in the covered year range.
func (c Config) Covers(d domain.Date) bool {
	return d.Year() >= c.fromYear && d.Year() <= c.toYear
}

// Holidays returns a copy of the holiday set.
func (c Config) Holidays() HolidaySet {
	return HolidaySet{}.Merge(c.holidays)
}

func (c Config) checkRange(d domain.Date) error {
	if !c.Covers(d) {
		return &OutOfRangeError{Date: d, FromYear: c.fromYear, ToYear: c.toYear}
	}
	return nil
}
