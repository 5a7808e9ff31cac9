// Package holidays supplies precomputed holiday sets to the calendar. The
// calendar never fetches or computes holidays itself; a Provider does, once
// per requested year range.
package holidays

import (
	"context"
	"fmt"

	"github.com/alexanderramin/prazo/internal/calendar"
)

// Provider produces the holiday set for an inclusive year range.
type Provider interface {
	Holidays(ctx context.Context, fromYear, toYear int) (calendar.HolidaySet, error)
}

// Bounded is implemented by providers that only know a fixed year range.
// ok is false when the provider answers for any year.
type Bounded interface {
	Coverage() (fromYear, toYear int, ok bool)
}

// CoverageOf reports the year range p declares, if any.
func CoverageOf(p Provider) (fromYear, toYear int, ok bool) {
	if b, isBounded := p.(Bounded); isBounded {
		return b.Coverage()
	}
	return 0, 0, false
}

// BuildConfig asks p for [fromYear, toYear] and wraps the result in a
// calendar.Config with the given weekly pattern. The range is first narrowed
// to p's declared coverage; dates in the trimmed years then fail per date
// with calendar.ErrOutOfRange when a walk actually reaches them.
func BuildConfig(ctx context.Context, p Provider, pattern calendar.WeeklyPattern, fromYear, toYear int) (calendar.Config, error) {
	if from, to, ok := CoverageOf(p); ok {
		if from > to || fromYear > to || toYear < from {
			return calendar.Config{}, fmt.Errorf("loading holidays %d-%d: %w: provider covers %d-%d",
				fromYear, toYear, calendar.ErrOutOfRange, from, to)
		}
		fromYear, toYear = max(fromYear, from), min(toYear, to)
	}
	set, err := p.Holidays(ctx, fromYear, toYear)
	if err != nil {
		return calendar.Config{}, fmt.Errorf("loading holidays %d-%d: %w", fromYear, toYear, err)
	}
	return calendar.NewConfig(pattern, set, fromYear, toYear)
}

// Merged combines several providers; later providers win on name collisions.
type Merged []Provider

func (m Merged) Holidays(ctx context.Context, fromYear, toYear int) (calendar.HolidaySet, error) {
	out := calendar.HolidaySet{}
	for _, p := range m {
		set, err := p.Holidays(ctx, fromYear, toYear)
		if err != nil {
			return nil, err
		}
		out = out.Merge(set)
	}
	return out, nil
}

// Coverage is the intersection of the bounded members' ranges.
func (m Merged) Coverage() (fromYear, toYear int, ok bool) {
	for _, p := range m {
		from, to, bounded := CoverageOf(p)
		if !bounded {
			continue
		}
		if !ok {
			fromYear, toYear, ok = from, to, true
			continue
		}
		fromYear, toYear = max(fromYear, from), min(toYear, to)
	}
	return fromYear, toYear, ok
}

func checkYears(fromYear, toYear int) error {
	if fromYear > toYear {
		return fmt.Errorf("invalid year range %d-%d", fromYear, toYear)
	}
	return nil
}
