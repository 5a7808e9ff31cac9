package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
)

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// BatchItemJSON is the JSON shape of one batch result. Exactly one of Run
// and Error is set.
type BatchItemJSON struct {
	Ref        string              `json:"ref"`
	FilingDate domain.Date         `json:"filing_date"`
	Scenario   string              `json:"scenario"`
	Run        *domain.ScheduleRun `json:"run,omitempty"`
	Error      *ErrorJSON          `json:"error,omitempty"`
}

type ErrorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchJSON converts batch results to their JSON shape.
func BatchJSON(results []contract.BatchResult) []BatchItemJSON {
	out := make([]BatchItemJSON, 0, len(results))
	for _, r := range results {
		item := BatchItemJSON{
			Ref:        r.Request.Ref,
			FilingDate: r.Request.FilingDate,
			Scenario:   r.Request.ScenarioName,
		}
		if r.Err != nil {
			se := contract.WrapScheduleError(r.Err)
			item.Error = &ErrorJSON{Code: string(se.Code), Message: se.Message}
		} else {
			run := r.Response.Run
			item.Run = &run
		}
		out = append(out, item)
	}
	return out
}

var recordCSVHeader = []string{
	"key", "name", "start_date", "end_date", "next_start", "duration", "unit",
	"clock_effect", "budget_overrun", "remaining_budget", "synthetic",
}

// WriteRecordsCSV writes one row per phase record.
func WriteRecordsCSV(w io.Writer, records []domain.PhaseRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordCSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(recordRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func recordRow(r domain.PhaseRecord) []string {
	return []string{
		r.Key,
		r.Name,
		r.StartDate.String(),
		r.EndDate.String(),
		r.NextStart.String(),
		strconv.Itoa(r.Duration),
		string(r.Unit),
		string(r.ClockEffect),
		strconv.FormatBool(r.BudgetOverrun),
		strconv.Itoa(r.RemainingBudget),
		strconv.FormatBool(r.Synthetic),
	}
}

// WriteLedgerCSV writes one row per calendar day.
func WriteLedgerCSV(w io.Writer, entries []domain.DayEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "weekday", "kind", "phase", "counted", "holiday"}); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.Date.String(),
			WeekdayAbbrev(e.Date.Weekday()),
			string(e.Kind),
			e.Phase,
			strconv.FormatBool(e.Counted),
			e.Holiday,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBatchCSV writes one summary row per batch item.
func WriteBatchCSV(w io.Writer, results []contract.BatchResult) error {
	cw := csv.NewWriter(w)
	header := []string{"ref", "filing_date", "scenario", "deadline", "remaining_budget", "overrun", "run_id", "error"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.Request.Ref, r.Request.FilingDate.String(), r.Request.ScenarioName}
		if r.Err != nil {
			row = append(row, "", "", "", "", r.Err.Error())
		} else {
			run := r.Response.Run
			row = append(row,
				run.Deadline.String(),
				strconv.Itoa(run.RemainingBudget),
				strconv.FormatBool(run.Overrun),
				run.ID,
				"",
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDaysCSV writes a classification range.
func WriteDaysCSV(w io.Writer, days []domain.DayEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "weekday", "kind", "holiday"}); err != nil {
		return err
	}
	for _, d := range days {
		if err := cw.Write([]string{d.Date.String(), WeekdayAbbrev(d.Date.Weekday()), string(d.Kind), d.Holiday}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHolidaysCSV writes a holiday list.
func WriteHolidaysCSV(w io.Writer, list []contract.Holiday) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "name"}); err != nil {
		return err
	}
	for _, h := range list {
		if err := cw.Write([]string{h.Date.String(), h.Name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RunJSON is the JSON shape of a computed run: the run fields at top level,
// plus the day ledger when one was requested.
type RunJSON struct {
	domain.ScheduleRun
	Ledger []domain.DayEntry `json:"ledger,omitempty"`
}
