package domain

import (
	"errors"
	"strings"
)

// ErrInvalidScenario matches any *InvalidScenarioError via errors.Is.
var ErrInvalidScenario = errors.New("invalid scenario")

// InvalidScenarioError reports every structural problem of a scenario. It is
// raised before any date arithmetic runs.
type InvalidScenarioError struct {
	Scenario string
	Problems []error
}

func (e *InvalidScenarioError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	name := e.Scenario
	if name == "" {
		name = "<unnamed>"
	}
	return "invalid scenario " + name + ": " + strings.Join(msgs, "; ")
}

func (e *InvalidScenarioError) Is(target error) bool {
	return target == ErrInvalidScenario
}

func (e *InvalidScenarioError) Unwrap() []error {
	return e.Problems
}
