package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
)

// FormatScenarioList renders the registry contents.
func FormatScenarioList(scenarios []domain.Scenario) string {
	if len(scenarios) == 0 {
		return Dim("No scenarios configured.") + "\n"
	}
	headers := []string{"NAME", "LIMIT", "PHASES", "TITLE"}
	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{
			Bold(s.Name),
			fmt.Sprintf("%d wd", s.StatutoryLimit),
			strconv.Itoa(len(s.Phases)),
			s.Title,
		})
	}
	return RenderTable(headers, rows)
}

// FormatScenario renders one scenario and its phases.
func FormatScenario(s *domain.Scenario) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name: "), Bold(s.Name)))
	b.WriteString(fmt.Sprintf("%s %d working days\n", Dim("Limit:"), s.StatutoryLimit))
	b.WriteString("\n")

	headers := []string{"KEY", "PHASE", "LENGTH", "CLOCK"}
	rows := make([][]string, 0, len(s.Phases))
	for _, p := range s.Phases {
		rows = append(rows, []string{Dim(p.Key), p.Name, Duration(p.Duration, p.Unit), ClockLabel(p.ClockEffect)})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d working days consumed by explicit phases", s.ConsumedBudget(), s.StatutoryLimit)) + "\n")

	return RenderBox(s.DisplayTitle(), b.String()) + "\n"
}

// FormatRunList renders archived run headers, newest first.
func FormatRunList(runs []*domain.ArchivedRun) string {
	if len(runs) == 0 {
		return Dim("No saved runs.") + "\n"
	}
	headers := []string{"ID", "LABEL", "SCENARIO", "FILING", "DEADLINE", "BUDGET", "SAVED"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		label := r.Label
		if label == "" {
			label = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			label,
			r.Scenario,
			r.FilingDate.String(),
			Bold(r.Deadline.String()),
			BudgetIndicator(r.RemainingBudget, r.Overrun),
			HumanTimestamp(r.CreatedAt),
		})
	}
	return RenderTable(headers, rows)
}
