// Package config provides configuration loading for the analysis pipeline.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all pipeline settings with defaults applied.
type Config struct {
	Data     DataConfig     `toml:"data"`
	Analysis AnalysisConfig `toml:"analysis"`
}

// DataConfig controls where the GDP series comes from.
type DataConfig struct {
	Country   string `toml:"country"`
	Indicator string `toml:"indicator"`
	StartYear int    `toml:"start-year"`
	EndYear   int    `toml:"end-year"`
	BaseURL   string `toml:"base-url"` // override for mirrors and tests
	CSVPath   string `toml:"csv-path"` // when set, load from file instead of the API
}

// AnalysisConfig controls the statistical procedure.
type AnalysisConfig struct {
	Alpha    float64 `toml:"alpha"`
	MaxD     int     `toml:"max-d"`
	MaxP     int     `toml:"max-p"`
	MaxQ     int     `toml:"max-q"`
	LjungLag int     `toml:"ljung-lag"`
	Strategy string  `toml:"strategy"` // "heuristic" or "aic"
	Forecast int     `toml:"forecast"` // steps ahead, 0 disables
}

// Default returns the configuration used when nothing is specified:
// Indian GDP in current US dollars over the full post-1960 record,
// analyzed at the 5% level with an AIC grid search.
func Default() Config {
	return Config{
		Data: DataConfig{
			Country:   "IN",
			Indicator: "NY.GDP.MKTP.CD",
			StartYear: 1960,
			EndYear:   2023,
		},
		Analysis: AnalysisConfig{
			Alpha:    0.05,
			MaxD:     2,
			MaxP:     3,
			MaxQ:     3,
			LjungLag: 10,
			Strategy: "aic",
			Forecast: 5,
		},
	}
}

// Load reads a TOML config from the given path on top of the defaults.
// A missing file is not an error; environment variables override both.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to decode config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides settings from GDPARIMA_* environment variables.
func (c *Config) applyEnv() {
	envString("GDPARIMA_COUNTRY", &c.Data.Country)
	envString("GDPARIMA_INDICATOR", &c.Data.Indicator)
	envInt("GDPARIMA_START_YEAR", &c.Data.StartYear)
	envInt("GDPARIMA_END_YEAR", &c.Data.EndYear)
	envString("GDPARIMA_BASE_URL", &c.Data.BaseURL)
	envString("GDPARIMA_CSV_PATH", &c.Data.CSVPath)

	envFloat("GDPARIMA_ALPHA", &c.Analysis.Alpha)
	envInt("GDPARIMA_MAX_D", &c.Analysis.MaxD)
	envInt("GDPARIMA_MAX_P", &c.Analysis.MaxP)
	envInt("GDPARIMA_MAX_Q", &c.Analysis.MaxQ)
	envInt("GDPARIMA_LJUNG_LAG", &c.Analysis.LjungLag)
	envString("GDPARIMA_STRATEGY", &c.Analysis.Strategy)
	envInt("GDPARIMA_FORECAST", &c.Analysis.Forecast)
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	if c.Data.CSVPath == "" {
		if c.Data.Country == "" {
			return fmt.Errorf("country is required when no CSV path is set")
		}
		if c.Data.Indicator == "" {
			return fmt.Errorf("indicator is required when no CSV path is set")
		}
		if c.Data.StartYear > c.Data.EndYear {
			return fmt.Errorf("invalid year range %d:%d", c.Data.StartYear, c.Data.EndYear)
		}
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0, 1), got %g", c.Analysis.Alpha)
	}
	if c.Analysis.MaxD < 0 || c.Analysis.MaxP < 0 || c.Analysis.MaxQ < 0 {
		return fmt.Errorf("order bounds must be non-negative")
	}
	switch c.Analysis.Strategy {
	case "heuristic", "aic":
	default:
		return fmt.Errorf("unknown strategy %q", c.Analysis.Strategy)
	}
	if c.Analysis.Forecast < 0 {
		return fmt.Errorf("forecast steps must be non-negative")
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
