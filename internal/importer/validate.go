package importer

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/prazo/internal/domain"
)

// ValidateBatchSchema checks the batch schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBatchSchema(schema *BatchSchema) []error {
	var errs []error

	defaultScenario := ""
	if schema.Defaults != nil {
		defaultScenario = schema.Defaults.Scenario
		errs = append(errs, validateOverrides("defaults.overrides", schema.Defaults.Overrides)...)
	}

	if len(schema.Filings) == 0 {
		errs = append(errs, fmt.Errorf("filings: at least one filing is required"))
	}

	refs := make(map[string]bool)
	for i, f := range schema.Filings {
		prefix := fmt.Sprintf("filings[%d]", i)

		if f.Ref != "" {
			if refs[f.Ref] {
				errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, f.Ref))
			}
			refs[f.Ref] = true
		}

		if f.FilingDate == "" {
			errs = append(errs, fmt.Errorf("%s.filing_date is required", prefix))
		} else if _, err := domain.ParseDate(f.FilingDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.filing_date: invalid date format %q (expected YYYY-MM-DD)", prefix, f.FilingDate))
		}

		if f.Scenario == "" && defaultScenario == "" {
			errs = append(errs, fmt.Errorf("%s.scenario is required (no defaults.scenario)", prefix))
		}

		errs = append(errs, validateOverrides(prefix+".overrides", f.Overrides)...)
	}

	return errs
}

func validateOverrides(prefix string, overrides map[string]int) []error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if overrides[k] < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be >= 0 (got %d)", prefix, k, overrides[k]))
		}
	}
	return errs
}
