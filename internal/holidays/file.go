package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileSchema is the on-disk holiday list. Years declares the range the list
// is complete for; asking for any year outside it is an error.
type FileSchema struct {
	Region   string      `json:"region" yaml:"region"`
	FromYear int         `json:"from_year" yaml:"from_year"`
	ToYear   int         `json:"to_year" yaml:"to_year"`
	Holidays []FileEntry `json:"holidays" yaml:"holidays"`
}

type FileEntry struct {
	Date domain.Date `json:"date" yaml:"date"`
	Name string      `json:"name" yaml:"name"`
}

// FileProvider serves an explicit holiday list loaded from disk.
type FileProvider struct {
	schema *FileSchema
}

// LoadFile reads a YAML or JSON holiday list, picked by file extension.
func LoadFile(path string) (*FileProvider, error) {
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
		return nil, fmt.Errorf("parsing holiday file: %w", err)
	}
	return NewFileProvider(&schema)
}

// NewFileProvider validates schema and wraps it.
func NewFileProvider(schema *FileSchema) (*FileProvider, error) {
	if err := checkYears(schema.FromYear, schema.ToYear); err != nil {
		return nil, fmt.Errorf("holiday file: %w", err)
	}
	if schema.FromYear == 0 {
		return nil, fmt.Errorf("holiday file: from_year is required")
	}
	seen := make(map[domain.Date]bool, len(schema.Holidays))
	for i, h := range schema.Holidays {
		if h.Date.IsZero() {
			return nil, fmt.Errorf("holiday file: holidays[%d]: date is required", i)
		}
		if h.Date.Year() < schema.FromYear || h.Date.Year() > schema.ToYear {
			return nil, fmt.Errorf("holiday file: holidays[%d]: %s outside declared years %d-%d", i, h.Date, schema.FromYear, schema.ToYear)
		}
		if seen[h.Date] {
			return nil, fmt.Errorf("holiday file: holidays[%d]: duplicate date %s", i, h.Date)
		}
		seen[h.Date] = true
	}
	return &FileProvider{schema: schema}, nil
}

// Coverage returns the years the file declares itself complete for.
func (f *FileProvider) Coverage() (fromYear, toYear int, ok bool) {
	return f.schema.FromYear, f.schema.ToYear, true
}

func (f *FileProvider) Holidays(ctx context.Context, fromYear, toYear int) (calendar.HolidaySet, error) {
	if err := checkYears(fromYear, toYear); err != nil {
		return nil, err
	}
	if fromYear < f.schema.FromYear || toYear > f.schema.ToYear {
		return nil, fmt.Errorf("%w: requested %d-%d, file covers %d-%d",
			calendar.ErrOutOfRange, fromYear, toYear, f.schema.FromYear, f.schema.ToYear)
	}
	set := calendar.HolidaySet{}
	for _, h := range f.schema.Holidays {
		if y := h.Date.Year(); y >= fromYear && y <= toYear {
			set[h.Date] = h.Name
		}
	}
	return set, nil
}
