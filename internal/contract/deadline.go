package contract

import (
	"github.com/alexanderramin/prazo/internal/domain"
)

// ComputeRequest asks for one schedule run. Scenario, when set, is used as is
// and ScenarioName is ignored.
type ComputeRequest struct {
	Ref          string
	FilingDate   domain.Date
	ScenarioName string
	Scenario     *domain.Scenario
	Overrides    map[string]int
	Ledger       bool
	Save         bool
}

func NewComputeRequest(filing domain.Date, scenarioName string) ComputeRequest {
	return ComputeRequest{
		FilingDate:   filing,
		ScenarioName: scenarioName,
	}
}

type ComputeResponse struct {
	Run      domain.ScheduleRun
	Scenario domain.Scenario
	Ledger   []domain.DayEntry
	Saved    bool
}

// BatchResult pairs a request with its outcome. Exactly one of Response and
// Err is set.
type BatchResult struct {
	Index    int
	Request  ComputeRequest
	Response *ComputeResponse
	Err      error
}

type MilestoneRequest struct {
	Terminal domain.Date
	Days     int
}

type MilestoneResponse struct {
	Terminal  domain.Date `json:"terminal"`
	Days      int         `json:"days"`
	Milestone domain.Date `json:"milestone"`
}

type ClassifyRequest struct {
	From domain.Date
	To   domain.Date
}

// NewClassifyRequest covers a single day.
func NewClassifyRequest(day domain.Date) ClassifyRequest {
	return ClassifyRequest{From: day, To: day}
}

type ClassifyResponse struct {
	Days         []domain.DayEntry `json:"days"`
	WorkingCount int               `json:"working_count"`
}

type Holiday struct {
	Date domain.Date `json:"date"`
	Name string      `json:"name"`
}
