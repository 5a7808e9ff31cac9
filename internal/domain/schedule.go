package domain

// PhaseRecord is one entry of a schedule's audit trail.
type PhaseRecord struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	// NextStart is the cursor handed to the following phase. It differs from
	// EndDate only when a calendar-day phase ends on a non-working day and the
	// next phase counts working days.
	NextStart       Date        `json:"next_start"`
	Duration        int         `json:"duration"`
	Unit            Unit        `json:"unit"`
	ClockEffect     ClockEffect `json:"clock_effect"`
	BudgetOverrun   bool        `json:"budget_overrun"`
	RemainingBudget int         `json:"remaining_budget"`
	Synthetic       bool        `json:"synthetic"`
}

// Realigned reports whether the cursor moved past EndDate.
func (r PhaseRecord) Realigned() bool {
	return r.NextStart != r.EndDate
}

// ScheduleRun is the output of one sequencing call.
type ScheduleRun struct {
	ID                string        `json:"id,omitempty"`
	FilingDate        Date          `json:"filing_date"`
	Scenario          string        `json:"scenario"`
	StatutoryLimit    int           `json:"statutory_limit"`
	Deadline          Date          `json:"deadline"`
	RemainingBudget   int           `json:"remaining_budget"`
	Overrun           bool          `json:"overrun"`
	// DeadlineRealigned is set when the deadline was moved forward off a
	// non-working day, so it differs from the last record's NextStart.
	DeadlineRealigned bool          `json:"deadline_realigned"`
	Records           []PhaseRecord `json:"records"`
}

// Tail returns the synthetic tail record, if the run has one.
func (r *ScheduleRun) Tail() (PhaseRecord, bool) {
	if len(r.Records) == 0 {
		return PhaseRecord{}, false
	}
	last := r.Records[len(r.Records)-1]
	if !last.Synthetic {
		return PhaseRecord{}, false
	}
	return last, true
}

// Record looks up a phase record by key.
func (r *ScheduleRun) Record(key string) (PhaseRecord, bool) {
	for _, rec := range r.Records {
		if rec.Key == key {
			return rec, true
		}
	}
	return PhaseRecord{}, false
}

// ConsumedBudget sums the consuming durations across all records, synthetic
// tail included.
func (r *ScheduleRun) ConsumedBudget() int {
	total := 0
	for _, rec := range r.Records {
		if rec.ClockEffect == ConsumesBudget {
			total += rec.Duration
		}
	}
	return total
}

// DayEntry classifies one calendar day of a run.
type DayEntry struct {
	Date    Date    `json:"date"`
	Kind    DayKind `json:"kind"`
	Phase   string  `json:"phase"`
	Counted bool    `json:"counted"`
	Holiday string  `json:"holiday,omitempty"`
}
