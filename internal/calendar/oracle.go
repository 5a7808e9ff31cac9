package calendar

import "github.com/alexanderramin/prazo/internal/domain"

// IsWorkingDay reports whether d permits statutory-clock progress: its weekday
// is in the pattern and it is not a holiday.
func (c Config) IsWorkingDay(d domain.Date) (bool, error) {
	if err := c.checkRange(d); err != nil {
		return false, err
	}
	if !c.pattern.Works(d.Weekday()) {
		return false, nil
	}
	return !c.holidays.Contains(d), nil
}

// Classify labels d as working, weekend or holiday. A holiday that falls on a
// non-working weekday is labelled holiday; either way it is not working.
func (c Config) Classify(d domain.Date) (domain.DayKind, error) {
	if err := c.checkRange(d); err != nil {
		return "", err
	}
	if c.holidays.Contains(d) {
		return domain.DayHoliday, nil
	}
	if !c.pattern.Works(d.Weekday()) {
		return domain.DayWeekend, nil
	}
	return domain.DayWorking, nil
}

// HolidayName returns the holiday label for d, or "" if d is not a holiday.
func (c Config) HolidayName(d domain.Date) string {
	return c.holidays[d]
}
