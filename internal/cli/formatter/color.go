package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColor switches styling on or off for everything rendered afterwards.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// KindStyle returns the style used for a day classification.
func KindStyle(kind domain.DayKind) lipgloss.Style {
	switch kind {
	case domain.DayWorking:
		return StyleGreen
	case domain.DayHoliday:
		return StylePurple
	case domain.DaySuspended:
		return StyleYellow
	default:
		return StyleDim
	}
}

// KindLabel renders a day classification such as "● working".
func KindLabel(kind domain.DayKind) string {
	return KindStyle(kind).Render("● " + string(kind))
}

// BudgetIndicator shows the remaining budget, red when the phases overrun
// the statutory limit.
func BudgetIndicator(remaining int, overrun bool) string {
	if overrun {
		return StyleRed.Render(fmt.Sprintf("▲ OVERRUN by %d", -remaining))
	}
	if remaining == 0 {
		return StyleYellow.Render("● EXACT")
	}
	return StyleGreen.Render(fmt.Sprintf("● %d to spare", remaining))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
