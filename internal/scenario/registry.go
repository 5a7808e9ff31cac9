package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
)

// ErrUnknownScenario is returned by Registry.Get for names it does not hold.
var ErrUnknownScenario = errors.New("unknown scenario")

// Registry is the lookup table from track name to scenario. It is built once
// and read only afterwards.
type Registry struct {
	byName map[string]domain.Scenario
	order  []string
}

// NewRegistry returns a registry holding the given scenarios. A later
// scenario replaces an earlier one with the same name.
func NewRegistry(scenarios ...domain.Scenario) (*Registry, error) {
	r := &Registry{byName: make(map[string]domain.Scenario)}
	for _, s := range scenarios {
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry holds the built-in tracks, overlaid by every *.yaml,
// *.yml and *.json file in dir. An empty dir or a missing directory yields
// just the built-ins.
func NewDefaultRegistry(dir string) (*Registry, error) {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return r, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("reading scenario directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		schema, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		s, err := Convert(schema)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(s domain.Scenario) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := r.byName[s.Name]; !exists {
		r.order = append(r.order, s.Name)
	}
	r.byName[s.Name] = s.Clone()
	return nil
}

// Get returns a copy of the named scenario.
func (r *Registry) Get(name string) (domain.Scenario, error) {
	s, ok := r.byName[name]
	if !ok {
		return domain.Scenario{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScenario, name, strings.Join(r.Names(), ", "))
	}
	return s.Clone(), nil
}

// List returns copies of all scenarios in registration order.
func (r *Registry) List() []domain.Scenario {
	out := make([]domain.Scenario, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Clone())
	}
	return out
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
