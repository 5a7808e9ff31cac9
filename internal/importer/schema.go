// Package importer reads batch files: lists of filings to compute in one go.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BatchSchema is the top-level structure of a batch file.
type BatchSchema struct {
	Defaults *DefaultsImport `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Filings  []FilingImport  `json:"filings" yaml:"filings"`
}

// DefaultsImport holds values that cascade to every filing.
type DefaultsImport struct {
	Scenario  string         `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Overrides map[string]int `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Ledger    *bool          `json:"ledger,omitempty" yaml:"ledger,omitempty"`
	Save      *bool          `json:"save,omitempty" yaml:"save,omitempty"`
}

// FilingImport is one procedure to schedule.
type FilingImport struct {
	Ref        string         `json:"ref" yaml:"ref"`
	FilingDate string         `json:"filing_date" yaml:"filing_date"`
	Scenario   string         `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Overrides  map[string]int `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Ledger     *bool          `json:"ledger,omitempty" yaml:"ledger,omitempty"`
	Save       *bool          `json:"save,omitempty" yaml:"save,omitempty"`
}

// LoadBatchSchema reads and parses a batch file. The format follows the
// extension: .json is JSON, anything else YAML.
func LoadBatchSchema(path string) (*BatchSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BatchSchema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &schema)
	} else {
		err = yaml.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &schema, nil
}
