package importer

import (
	"fmt"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
)

// Convert transforms a validated BatchSchema into compute requests, one per
// filing and in file order. Filing values win over defaults; override maps
// are merged key by key. A filing without a ref is labelled by position.
// Call ValidateBatchSchema first; Convert assumes the schema is valid.
func Convert(schema *BatchSchema) ([]contract.ComputeRequest, error) {
	defaults := DefaultsImport{}
	if schema.Defaults != nil {
		defaults = *schema.Defaults
	}

	reqs := make([]contract.ComputeRequest, 0, len(schema.Filings))
	for i, f := range schema.Filings {
		filing, err := domain.ParseDate(f.FilingDate)
		if err != nil {
			return nil, fmt.Errorf("parsing filings[%d].filing_date: %w", i, err)
		}

		name := f.Scenario
		if name == "" {
			name = defaults.Scenario
		}
		req := contract.NewComputeRequest(filing, name)

		req.Ref = f.Ref
		if req.Ref == "" {
			req.Ref = fmt.Sprintf("#%d", i+1)
		}
		req.Overrides = mergeOverrides(defaults.Overrides, f.Overrides)
		req.Ledger = firstBool(f.Ledger, defaults.Ledger)
		req.Save = firstBool(f.Save, defaults.Save)

		reqs = append(reqs, req)
	}
	return reqs, nil
}

func mergeOverrides(base, top map[string]int) map[string]int {
	if len(base) == 0 && len(top) == 0 {
		return nil
	}
	out := make(map[string]int, len(base)+len(top))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}

func firstBool(vals ...*bool) bool {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return false
}
