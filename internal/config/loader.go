package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PRAZO"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal only sees environment variables for keys viper knows about.
	d := DefaultConfig()
	v.SetDefault("db", d.DB)
	v.SetDefault("scenario_dir", d.ScenarioDir)
	v.SetDefault("holidays.region", d.Holidays.Region)
	v.SetDefault("holidays.file", d.Holidays.File)
	v.SetDefault("holidays.carnival", d.Holidays.Carnival)
	v.SetDefault("holidays.municipal", []string{})
	v.SetDefault("holidays.horizon_years", d.Holidays.HorizonYears)
	v.SetDefault("holidays.workdays", d.Holidays.Workdays)
	v.SetDefault("batch_concurrency", d.BatchConcurrency)
	v.SetDefault("log", d.Log)
	v.SetDefault("metrics_file", d.MetricsFile)
	return v
}

// Load reads configPath when it is non-empty, then applies PRAZO_*
// environment overrides. A missing file is an error; an empty path is not.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	return unmarshalAndValidate(v)
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment without overriding variables already set. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: loading %s: %w", p, err)
		}
	}
	return nil
}
