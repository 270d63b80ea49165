package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/config"
	"econmap/internal/domain"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "econmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadWith("", env(nil))
	require.NoError(t, err)

	assert.Equal(t, "datasets/gdp_1960_2020.csv", cfg.Input.GDP)
	assert.Equal(t, "datasets/global_inflation_data.csv", cfg.Input.Inflation)
	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, "datasets/economic_data_1980_2020.csv", cfg.Output.Path)
	assert.Equal(t, 1980, cfg.Years.Min)
	assert.Equal(t, 2020, cfg.Years.Max)
	assert.True(t, cfg.Resolve.Fuzzy)
	assert.Equal(t, 10, cfg.Resolve.UnresolvedSample)
	assert.Equal(t, "economic_data", cfg.Mirror.Table)
	assert.Equal(t, 500*time.Millisecond, cfg.Trigger.Debounce)
	assert.Equal(t, "interactive_economic_map.html", cfg.Map.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	assert.Nil(t, cfg.MirrorConnection())
	assert.Equal(t, cfg.Output.Path, cfg.MapInput())
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := writeYAML(t, `
input:
  gdp: data/gdp.csv
years:
  min: 1990
  max: 2000
mirror:
  driver: sqlite
  host: out/econ.db
trigger:
  debounce: 2s
logging:
  level: debug
`)

	cfg, err := config.LoadWith(path, env(map[string]string{
		"ECONMAP_YEAR_MAX":  "2010",
		"ECONMAP_LOG_LEVEL": "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, "data/gdp.csv", cfg.Input.GDP)
	assert.Equal(t, "datasets/global_inflation_data.csv", cfg.Input.Inflation, "absent keys keep defaults")
	assert.Equal(t, 1990, cfg.Years.Min)
	assert.Equal(t, 2010, cfg.Years.Max, "env overrides file")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.Trigger.Debounce)

	conn := cfg.MirrorConnection()
	require.NotNil(t, conn)
	assert.Equal(t, domain.MirrorDriverSQLite, conn.Driver)
	assert.Equal(t, "out/econ.db", conn.Host)
	assert.Equal(t, "economic_data", conn.Table)
	assert.Equal(t, "mirror", conn.PasswordKey)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	_, err := config.LoadWith("", env(map[string]string{"ECONMAP_YEAR_MIN": "abc"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ECONMAP_YEAR_MIN")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.LoadWith(filepath.Join(t.TempDir(), "nope.yaml"), env(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := config.Defaults()
	cfg.Years.Min, cfg.Years.Max = 2021, 2020
	cfg.Mirror.Driver = "oracle"
	cfg.Trigger.Schedule = "every tuesday"
	cfg.Logging.Format = "xml"
	cfg.Input.Delimiter = ";;"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	for _, want := range []string{"years.min", "mirror.driver", "trigger.schedule", "logging.format", "input.delimiter"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_MirrorNeedsHost(t *testing.T) {
	cfg := config.Defaults()
	cfg.Mirror.Driver = "postgres"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mirror.host")
}

func TestValidate_MapFromMirrorNeedsDriver(t *testing.T) {
	cfg := config.Defaults()
	cfg.Map.FromMirror = true

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map.from_mirror")
}

func TestValidate_AcceptsCronDescriptors(t *testing.T) {
	cfg := config.Defaults()
	cfg.Trigger.Schedule = "@daily"
	assert.NoError(t, cfg.Validate())

	cfg.Trigger.Schedule = "0 6 * * 1"
	assert.NoError(t, cfg.Validate())
}

func TestString_OmitsSecrets(t *testing.T) {
	cfg := config.Defaults()
	cfg.Mirror.Driver = "mysql"
	s := cfg.String()
	assert.Contains(t, s, `Driver: "mysql"`)
	assert.NotContains(t, s, "password")
}
