package domain

import (
	"fmt"
	"regexp"
)

var phaseKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Phase is one procedural step in a schedule.
type Phase struct {
	Key         string      `json:"key" yaml:"key"`
	Name        string      `json:"name" yaml:"name"`
	Duration    int         `json:"duration" yaml:"duration"`
	Unit        Unit        `json:"unit" yaml:"unit"`
	ClockEffect ClockEffect `json:"clock_effect" yaml:"clock_effect"`
}

// Scenario is a named, ordered list of phases checked against a statutory
// limit expressed in working days.
type Scenario struct {
	Name           string  `json:"name" yaml:"name"`
	Title          string  `json:"title" yaml:"title"`
	StatutoryLimit int     `json:"statutory_limit" yaml:"statutory_limit"`
	Phases         []Phase `json:"phases" yaml:"phases"`
}

// Validate returns nil for a well formed scenario, or an
// *InvalidScenarioError listing every problem found.
func (s *Scenario) Validate() error {
	var problems []error

	if s.Name == "" {
		problems = append(problems, fmt.Errorf("name is required"))
	}
	if s.StatutoryLimit <= 0 {
		problems = append(problems, fmt.Errorf("statutory_limit must be > 0 (got %d)", s.StatutoryLimit))
	}
	if len(s.Phases) == 0 {
		problems = append(problems, fmt.Errorf("at least one phase is required"))
	}

	seen := make(map[string]bool, len(s.Phases))
	for i, p := range s.Phases {
		switch {
		case p.Key == "":
			problems = append(problems, fmt.Errorf("phase[%d]: key is required", i))
		case !phaseKeyPattern.MatchString(p.Key):
			problems = append(problems, fmt.Errorf("phase[%d]: key %q must be lower_snake_case", i, p.Key))
		case p.Key == TailPhaseKey:
			problems = append(problems, fmt.Errorf("phase[%d]: key %q is reserved", i, p.Key))
		case seen[p.Key]:
			problems = append(problems, fmt.Errorf("phase[%d]: duplicate key %q", i, p.Key))
		}
		seen[p.Key] = true

		if p.Duration < 0 {
			problems = append(problems, fmt.Errorf("phase[%d] %q: duration must be >= 0 (got %d)", i, p.Key, p.Duration))
		}
		if !p.Unit.Valid() {
			problems = append(problems, fmt.Errorf("phase[%d] %q: invalid unit %q", i, p.Key, p.Unit))
		}
		if !p.ClockEffect.Valid() {
			problems = append(problems, fmt.Errorf("phase[%d] %q: invalid clock_effect %q", i, p.Key, p.ClockEffect))
		}
	}

	if len(problems) > 0 {
		return &InvalidScenarioError{Scenario: s.Name, Problems: problems}
	}
	return nil
}

// ConsumedBudget sums the durations of budget-consuming phases.
func (s *Scenario) ConsumedBudget() int {
	total := 0
	for _, p := range s.Phases {
		if p.ClockEffect == ConsumesBudget {
			total += p.Duration
		}
	}
	return total
}

// Clone returns a deep copy so callers can derive variants without touching
// shared configuration.
func (s Scenario) Clone() Scenario {
	out := s
	out.Phases = make([]Phase, len(s.Phases))
	copy(out.Phases, s.Phases)
	return out
}

// DisplayTitle prefers Title and falls back to Name.
func (s *Scenario) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}
