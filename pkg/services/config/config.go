package config

import (
	"fmt"

	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/spf13/viper"
)

// Config is the reporting profile loaded from a config file. Zero values
// fall back to the published defaults.
type Config struct {
	DatasetPath string `mapstructure:"dataset_path"`
	OutputDir   string `mapstructure:"output_dir"`
	DBPath      string `mapstructure:"db_path"`
	YearFrom    int    `mapstructure:"year_from"`
	YearTo      int    `mapstructure:"year_to"`
}

// LoadConfig reads the profile at profilePath.
func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse reporting config: %w", err)
	}
	return &cfg, nil
}

// Settings merges the profile's year bounds onto the default reporting
// rules.
func (c *Config) Settings() report.Settings {
	s := report.DefaultSettings()
	if c.YearFrom != 0 {
		s.YearFrom = c.YearFrom
	}
	if c.YearTo != 0 {
		s.YearTo = c.YearTo
	}
	return s
}
