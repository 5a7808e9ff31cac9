package holidays

import (
	"context"
	"time"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
)

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var portugueseFixed = []fixedHoliday{
	{time.January, 1, "Ano Novo"},
	{time.April, 25, "Dia da Liberdade"},
	{time.May, 1, "Dia do Trabalhador"},
	{time.June, 10, "Dia de Portugal"},
	{time.August, 15, "Assunção de Nossa Senhora"},
	{time.October, 5, "Implantação da República"},
	{time.November, 1, "Dia de Todos os Santos"},
	{time.December, 1, "Restauração da Independência"},
	{time.December, 8, "Imaculada Conceição"},
	{time.December, 25, "Natal"},
}

// MunicipalHoliday is a fixed local holiday, e.g. Lisbon's 13 June.
type MunicipalHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

// Portugal yields the Portuguese national holidays: ten fixed dates plus
// Good Friday, Easter Sunday and Corpus Christi. Carnival Tuesday is
// optional tolerance, not a statutory holiday.
type Portugal struct {
	Carnival  bool
	Municipal []MunicipalHoliday
}

func (p Portugal) Holidays(ctx context.Context, fromYear, toYear int) (calendar.HolidaySet, error) {
	if err := checkYears(fromYear, toYear); err != nil {
		return nil, err
	}
	set := calendar.HolidaySet{}
	for y := fromYear; y <= toYear; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, f := range portugueseFixed {
			set[domain.NewDate(y, f.month, f.day)] = f.name
		}
		for _, m := range p.Municipal {
			// Skip dates that do not exist this year, such as 29 February.
			if d := domain.NewDate(y, m.Month, m.Day); d.Month() == m.Month && d.Day() == m.Day {
				set[d] = m.Name
			}
		}

		easter := EasterSunday(y)
		set[easter.AddDays(-2)] = "Sexta-feira Santa"
		set[easter] = "Páscoa"
		set[easter.AddDays(60)] = "Corpo de Deus"
		if p.Carnival {
			set[easter.AddDays(-47)] = "Carnaval"
		}
	}
	return set, nil
}

// EasterSunday returns the Gregorian Easter date for year
// (Meeus/Jones/Butcher algorithm).
func EasterSunday(year int) domain.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return domain.NewDate(year, time.Month(month), day)
}
