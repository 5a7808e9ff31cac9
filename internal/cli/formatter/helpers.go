package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

var weekdayAbbrev = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// WeekdayAbbrev returns the Portuguese three-letter weekday name.
func WeekdayAbbrev(wd time.Weekday) string {
	return weekdayAbbrev[wd]
}

// DayDate renders a date with its weekday, e.g. "2025-07-21 seg".
func DayDate(d domain.Date) string {
	if d.IsZero() {
		return Dim("--")
	}
	return d.String() + " " + Dim(WeekdayAbbrev(d.Weekday()))
}

// Duration renders a phase length with its unit, e.g. "30 wd".
func Duration(n int, unit domain.Unit) string {
	switch unit {
	case domain.WorkingDay:
		return fmt.Sprintf("%d wd", n)
	case domain.CalendarDay:
		return fmt.Sprintf("%d cd", n)
	default:
		return fmt.Sprintf("%d %s", n, unit)
	}
}

// ClockLabel renders a clock effect as a short colored label.
func ClockLabel(effect domain.ClockEffect) string {
	switch effect {
	case domain.ConsumesBudget:
		return StyleBlue.Render("consumes")
	case domain.SuspendsBudget:
		return StyleYellow.Render("suspends")
	default:
		return Dim(string(effect))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanTimestamp renders a UTC timestamp in local time, minute precision.
func HumanTimestamp(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return t.Local().Format("2006-01-02 15:04")
}
