package scenario

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
)

// ApplyOverrides returns a copy of s with the durations of the phases named in
// overrides replaced. s itself is never modified. Unknown keys and negative
// durations are errors.
func ApplyOverrides(s domain.Scenario, overrides map[string]int) (domain.Scenario, error) {
	out := s.Clone()
	if len(overrides) == 0 {
		return out, nil
	}

	index := make(map[string]int, len(out.Phases))
	for i, p := range out.Phases {
		index[p.Key] = i
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		days := overrides[key]
		i, ok := index[key]
		if !ok {
			return domain.Scenario{}, fmt.Errorf("override: scenario %q has no phase %q", s.Name, key)
		}
		if days < 0 {
			return domain.Scenario{}, fmt.Errorf("override: phase %q duration must be >= 0 (got %d)", key, days)
		}
		out.Phases[i].Duration = days
	}
	return out, nil
}

// ParseOverrides parses "key=days" pairs as given on the command line.
func ParseOverrides(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q (expected key=days)", pair)
		}
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid override %q: %w", pair, err)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("override for %q given twice", key)
		}
		out[key] = days
	}
	return out, nil
}
