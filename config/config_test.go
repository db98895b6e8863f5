package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "IN", cfg.Data.Country)
	assert.Equal(t, "NY.GDP.MKTP.CD", cfg.Data.Indicator)
	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, "aic", cfg.Analysis.Strategy)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
country = "BR"
start-year = 1990
end-year = 2020

[analysis]
alpha = 0.01
strategy = "heuristic"
max-p = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "BR", cfg.Data.Country)
	assert.Equal(t, 1990, cfg.Data.StartYear)
	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.Equal(t, "heuristic", cfg.Analysis.Strategy)
	assert.Equal(t, 2, cfg.Analysis.MaxP)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Analysis.MaxQ)
	assert.Equal(t, "NY.GDP.MKTP.CD", cfg.Data.Indicator)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[data]\ncountry = \"BR\"\n"), 0o644))

	t.Setenv("GDPARIMA_COUNTRY", "JP")
	t.Setenv("GDPARIMA_ALPHA", "0.10")
	t.Setenv("GDPARIMA_MAX_D", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "JP", cfg.Data.Country)
	assert.Equal(t, 0.10, cfg.Analysis.Alpha)
	assert.Equal(t, 1, cfg.Analysis.MaxD)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty country", func(c *Config) { c.Data.Country = "" }},
		{"empty indicator", func(c *Config) { c.Data.Indicator = "" }},
		{"inverted years", func(c *Config) { c.Data.StartYear = 2030 }},
		{"alpha too high", func(c *Config) { c.Analysis.Alpha = 1.5 }},
		{"alpha zero", func(c *Config) { c.Analysis.Alpha = 0 }},
		{"negative max-p", func(c *Config) { c.Analysis.MaxP = -1 }},
		{"unknown strategy", func(c *Config) { c.Analysis.Strategy = "random" }},
		{"negative forecast", func(c *Config) { c.Analysis.Forecast = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateCSVModeSkipsAPIFields(t *testing.T) {
	cfg := Default()
	cfg.Data.CSVPath = "gdp.csv"
	cfg.Data.Country = ""
	cfg.Data.Indicator = ""

	assert.NoError(t, cfg.Validate())
}
