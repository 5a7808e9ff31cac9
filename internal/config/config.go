// Package config loads prazo settings from defaults, an optional YAML file,
// a .env file and PRAZO_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/holidays"
)

const (
	RegionPortugal = "pt"
	RegionFile     = "file"
)

// HolidayConfig selects the holiday provider and the calendar shape.
type HolidayConfig struct {
	Region       string   `mapstructure:"region"`
	File         string   `mapstructure:"file"`
	Carnival     bool     `mapstructure:"carnival"`
	Municipal    []string `mapstructure:"municipal"`
	HorizonYears int      `mapstructure:"horizon_years"`
	Workdays     string   `mapstructure:"workdays"`
}

type Config struct {
	DB               string        `mapstructure:"db"`
	ScenarioDir      string        `mapstructure:"scenario_dir"`
	Holidays         HolidayConfig `mapstructure:"holidays"`
	BatchConcurrency int           `mapstructure:"batch_concurrency"`
	Log              bool          `mapstructure:"log"`
	MetricsFile      string        `mapstructure:"metrics_file"`
}

// DefaultConfig keeps state under ~/.prazo and uses the Portuguese national
// calendar, Monday to Friday.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".prazo")

	scenarioDir := filepath.Join(base, "scenarios")
	// ./scenarios wins during development.
	if stat, err := os.Stat("./scenarios"); err == nil && stat.IsDir() {
		scenarioDir = "./scenarios"
	}

	return Config{
		DB:          filepath.Join(base, "prazo.db"),
		ScenarioDir: scenarioDir,
		Holidays: HolidayConfig{
			Region:       RegionPortugal,
			HorizonYears: 3,
			Workdays:     calendar.MondayToFriday.String(),
		},
		BatchConcurrency: 4,
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch c.Holidays.Region {
	case RegionPortugal:
	case RegionFile:
		if c.Holidays.File == "" {
			errs = append(errs, fmt.Errorf("holidays.file is required when holidays.region is %q", RegionFile))
		}
	default:
		errs = append(errs, fmt.Errorf("holidays.region: unknown region %q (want %q or %q)", c.Holidays.Region, RegionPortugal, RegionFile))
	}
	if c.Holidays.HorizonYears <= 0 {
		errs = append(errs, fmt.Errorf("holidays.horizon_years must be > 0 (got %d)", c.Holidays.HorizonYears))
	}
	if _, err := calendar.ParseWeeklyPattern(c.Holidays.Workdays); err != nil {
		errs = append(errs, fmt.Errorf("holidays.workdays: %w", err))
	}
	if _, err := parseMunicipal(c.Holidays.Municipal); err != nil {
		errs = append(errs, fmt.Errorf("holidays.municipal: %w", err))
	}
	if c.BatchConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("batch_concurrency must be > 0 (got %d)", c.BatchConcurrency))
	}
	return errors.Join(errs...)
}

// Pattern returns the configured working week. Call Validate first.
func (c *Config) Pattern() calendar.WeeklyPattern {
	p, err := calendar.ParseWeeklyPattern(c.Holidays.Workdays)
	if err != nil {
		return calendar.MondayToFriday
	}
	return p
}

// HolidayProvider builds the configured provider wrapped in a cache.
func (c *Config) HolidayProvider() (*holidays.Cache, error) {
	switch c.Holidays.Region {
	case RegionFile:
		p, err := holidays.LoadFile(c.Holidays.File)
		if err != nil {
			return nil, fmt.Errorf("loading holiday file %s: %w", c.Holidays.File, err)
		}
		return holidays.NewCache(p), nil
	default:
		municipal, err := parseMunicipal(c.Holidays.Municipal)
		if err != nil {
			return nil, err
		}
		return holidays.NewCache(holidays.Portugal{Carnival: c.Holidays.Carnival, Municipal: municipal}), nil
	}
}

// parseMunicipal reads "MM-DD Name" entries, e.g. "06-13 Santo António".
func parseMunicipal(entries []string) ([]holidays.MunicipalHoliday, error) {
	out := make([]holidays.MunicipalHoliday, 0, len(entries))
	for _, e := range entries {
		if len(e) < 5 {
			return nil, fmt.Errorf("invalid entry %q (want \"MM-DD Name\")", e)
		}
		t, err := time.Parse("01-02", e[:5])
		if err != nil {
			return nil, fmt.Errorf("invalid entry %q (want \"MM-DD Name\")", e)
		}
		if t.Month() == time.February && t.Day() == 29 {
			return nil, fmt.Errorf("invalid entry %q: 29 February does not occur every year", e)
		}
		name := "Feriado municipal"
		if len(e) > 6 {
			name = e[6:]
		}
		out = append(out, holidays.MunicipalHoliday{Month: t.Month(), Day: t.Day(), Name: name})
	}
	return out, nil
}
