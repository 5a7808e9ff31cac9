package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
)

// FormatSchedule renders a computed run as a boxed phase table, followed by
// the day ledger when the response carries one.
func FormatSchedule(resp *contract.ComputeResponse) string {
	var b strings.Builder

	b.WriteString(runSummary(&resp.Run, resp.Scenario.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(FormatRecords(resp.Run.Records))

	out := RenderBox("Schedule", b.String()) + "\n"
	if len(resp.Ledger) > 0 {
		out += "\n" + FormatLedger(resp.Ledger)
	}
	return out
}

// FormatArchivedRun renders a stored run the same way as a fresh one.
func FormatArchivedRun(run *domain.ArchivedRun) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Run:     "), run.ID))
	if run.Label != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Label:   "), Bold(run.Label)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Saved:   "), HumanTimestamp(run.CreatedAt)))
	b.WriteString(runSummary(&run.ScheduleRun, run.Scenario))
	b.WriteString("\n")
	b.WriteString(FormatRecords(run.Records))

	return RenderBox("Archived run", b.String()) + "\n"
}

func runSummary(run *domain.ScheduleRun, title string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Scenario:"), title))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Filing:  "), DayDate(run.FilingDate)))
	b.WriteString(fmt.Sprintf("%s %d working days\n", Dim("Limit:   "), run.StatutoryLimit))
	deadline := Bold(run.Deadline.String()) + " " + Dim(WeekdayAbbrev(run.Deadline.Weekday()))
	if run.DeadlineRealigned {
		deadline += " " + Dim("(moved off a non-working day)")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Deadline:"), deadline))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Budget:  "), BudgetIndicator(run.RemainingBudget, run.Overrun)))
	return b.String()
}

// FormatRecords renders the phase audit trail.
func FormatRecords(records []domain.PhaseRecord) string {
	headers := []string{"#", "PHASE", "START", "END", "LENGTH", "CLOCK", "REMAINING"}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		name := r.Name
		if r.Synthetic {
			name = StyleDim.Italic(true).Render(name)
		}
		end := DayDate(r.EndDate)
		if r.Realigned() {
			end += " " + Dim("→ "+r.NextStart.String())
		}
		remaining := strconv.Itoa(r.RemainingBudget)
		if r.BudgetOverrun {
			remaining = StyleRed.Render(remaining + " ▲")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			name,
			DayDate(r.StartDate),
			end,
			Duration(r.Duration, r.Unit),
			ClockLabel(r.ClockEffect),
			remaining,
		})
	}
	return RenderTable(headers, rows)
}

// FormatLedger renders one line per calendar day.
func FormatLedger(entries []domain.DayEntry) string {
	headers := []string{"DATE", "KIND", "PHASE", "COUNTED", "HOLIDAY"}
	rows := make([][]string, 0, len(entries))
	counted := 0
	for _, e := range entries {
		mark := Dim("·")
		if e.Counted {
			counted++
			mark = StyleGreen.Render(strconv.Itoa(counted))
		}
		rows = append(rows, []string{
			DayDate(e.Date),
			KindLabel(e.Kind),
			e.Phase,
			mark,
			StylePurple.Render(e.Holiday),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Day ledger") + "\n")
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("%d days, %d counted against the limit", len(entries), counted)) + "\n")
	return b.String()
}

// FormatBatch renders one line per batch item, failures included.
func FormatBatch(results []contract.BatchResult) string {
	headers := []string{"REF", "FILING", "SCENARIO", "DEADLINE", "BUDGET"}
	rows := make([][]string, 0, len(results))
	failed := 0
	for _, r := range results {
		row := []string{
			Bold(r.Request.Ref),
			DayDate(r.Request.FilingDate),
			r.Request.ScenarioName,
		}
		if r.Err != nil {
			failed++
			row = append(row, StyleRed.Render("error"), StyleRed.Render(r.Err.Error()))
		} else {
			run := r.Response.Run
			deadline := DayDate(run.Deadline)
			if r.Response.Saved {
				deadline += " " + TruncID(run.ID)
			}
			row = append(row, deadline, BudgetIndicator(run.RemainingBudget, run.Overrun))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d computed", len(results)-failed)
	if failed > 0 {
		summary += ", " + StyleRed.Render(fmt.Sprintf("%d failed", failed))
	}
	b.WriteString(summary + "\n")
	return b.String()
}

// FormatMilestone renders a reverse-scheduling answer on one line.
func FormatMilestone(resp *contract.MilestoneResponse) string {
	return fmt.Sprintf("%s %s %s\n",
		Bold(DayDate(resp.Milestone)),
		Dim(fmt.Sprintf("is %d working days before", resp.Days)),
		DayDate(resp.Terminal))
}

// FormatDays renders a classification range.
func FormatDays(resp *contract.ClassifyResponse) string {
	headers := []string{"DATE", "KIND", "HOLIDAY"}
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		rows = append(rows, []string{DayDate(d.Date), KindLabel(d.Kind), StylePurple.Render(d.Holiday)})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	if len(resp.Days) > 1 {
		b.WriteString(Dim(fmt.Sprintf("%d of %d days are working days", resp.WorkingCount, len(resp.Days))) + "\n")
	}
	return b.String()
}

// FormatHolidays renders a holiday list.
func FormatHolidays(list []contract.Holiday) string {
	if len(list) == 0 {
		return Dim("No holidays in range.") + "\n"
	}
	headers := []string{"DATE", "HOLIDAY"}
	rows := make([][]string, 0, len(list))
	for _, h := range list {
		rows = append(rows, []string{DayDate(h.Date), h.Name})
	}
	return RenderTable(headers, rows)
}
