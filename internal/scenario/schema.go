package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileSchema is the on-disk scenario definition.
type FileSchema struct {
	Name           string        `json:"name" yaml:"name"`
	Title          string        `json:"title,omitempty" yaml:"title,omitempty"`
	StatutoryLimit int           `json:"statutory_limit" yaml:"statutory_limit"`
	Phases         []PhaseConfig `json:"phases" yaml:"phases"`
}

// PhaseConfig uses strings for unit and clock effect so validation can report
// bad values by name instead of failing the decode.
type PhaseConfig struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Duration    *int   `json:"duration" yaml:"duration"`
	Unit        string `json:"unit" yaml:"unit"`
	ClockEffect string `json:"clock_effect" yaml:"clock_effect"`
}

// LoadFile reads a YAML or JSON scenario file, picked by extension.
func LoadFile(path string) (*FileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema FileSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &schema)
	default:
		err = yaml.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &schema, nil
}

// ValidateFile checks a FileSchema for structural errors and returns every
// problem found (empty if valid).
func ValidateFile(schema *FileSchema) []error {
	var errs []error

	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("scenario name is required"))
	}
	if schema.StatutoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("statutory_limit must be > 0"))
	}
	if len(schema.Phases) == 0 {
		errs = append(errs, fmt.Errorf("at least one phase is required"))
	}

	keys := map[string]bool{}
	for i, p := range schema.Phases {
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("phases[%d]: key is required", i))
		} else if keys[p.Key] {
			errs = append(errs, fmt.Errorf("phases[%d]: duplicate key %q", i, p.Key))
		}
		keys[p.Key] = true

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("phases[%d]: name is required", i))
		}
		if p.Duration == nil {
			errs = append(errs, fmt.Errorf("phases[%d]: duration is required", i))
		} else if *p.Duration < 0 {
			errs = append(errs, fmt.Errorf("phases[%d]: duration must be >= 0", i))
		}
		if !domain.ValidUnits[p.Unit] {
			errs = append(errs, fmt.Errorf("phases[%d]: invalid unit %q", i, p.Unit))
		}
		if !domain.ValidClockEffects[p.ClockEffect] {
			errs = append(errs, fmt.Errorf("phases[%d]: invalid clock_effect %q", i, p.ClockEffect))
		}
	}

	return errs
}

// Convert validates schema and turns it into a domain.Scenario.
func Convert(schema *FileSchema) (domain.Scenario, error) {
	if errs := ValidateFile(schema); len(errs) > 0 {
		return domain.Scenario{}, &domain.InvalidScenarioError{Scenario: schema.Name, Problems: errs}
	}

	s := domain.Scenario{
		Name:           schema.Name,
		Title:          schema.Title,
		StatutoryLimit: schema.StatutoryLimit,
		Phases:         make([]domain.Phase, 0, len(schema.Phases)),
	}
	for _, p := range schema.Phases {
		s.Phases = append(s.Phases, domain.Phase{
			Key:         p.Key,
			Name:        p.Name,
			Duration:    *p.Duration,
			Unit:        domain.Unit(p.Unit),
			ClockEffect: domain.ClockEffect(p.ClockEffect),
		})
	}
	// Key format and reserved names are enforced by the domain.
	if err := s.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	return s, nil
}
