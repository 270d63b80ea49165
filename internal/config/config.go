// Package config holds the settings for the pipeline and the map generator.
// Values come from defaults, an optional YAML file, ECONMAP_* environment
// variables and finally CLI flags, each layer overriding the previous one.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Years   YearsConfig   `yaml:"years"`
	Resolve ResolveConfig `yaml:"resolve"`
	Mirror  MirrorConfig  `yaml:"mirror"`
	Trigger TriggerConfig `yaml:"trigger"`
	Map     MapConfig     `yaml:"map"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the two source datasets.
type InputConfig struct {
	// GDP is the GDP CSV (country, year, gdp, state)
	GDP string `yaml:"gdp" env:"ECONMAP_GDP_PATH" default:"datasets/gdp_1960_2020.csv"`

	// Inflation is the wide inflation CSV (country_name, indicator_name, <year>...)
	Inflation string `yaml:"inflation" env:"ECONMAP_INFLATION_PATH" default:"datasets/global_inflation_data.csv"`

	// Delimiter is the column separator of both inputs (default: comma)
	Delimiter string `yaml:"delimiter" env:"ECONMAP_INPUT_DELIMITER" default:","`
}

// OutputConfig locates the final table.
type OutputConfig struct {
	Path string `yaml:"path" env:"ECONMAP_OUTPUT_PATH" default:"datasets/economic_data_1980_2020.csv"`
}

// YearsConfig is the inclusive analysis window.
type YearsConfig struct {
	Min int `yaml:"min" env:"ECONMAP_YEAR_MIN" default:"1980"`
	Max int `yaml:"max" env:"ECONMAP_YEAR_MAX" default:"2020"`
}

// ResolveConfig tunes country code resolution.
type ResolveConfig struct {
	// Fuzzy enables the fuzzy fallback after overrides and exact lookup (default: true)
	Fuzzy bool `yaml:"fuzzy" env:"ECONMAP_RESOLVE_FUZZY" default:"true"`

	// UnresolvedSample is how many unresolved names the warning lists (default: 10)
	UnresolvedSample int `yaml:"unresolved_sample" env:"ECONMAP_UNRESOLVED_SAMPLE" default:"10"`
}

// MirrorConfig describes the optional database copy of the final table.
// An empty driver disables the mirror.
type MirrorConfig struct {
	Driver      string `yaml:"driver" env:"ECONMAP_MIRROR_DRIVER"`
	Host        string `yaml:"host" env:"ECONMAP_MIRROR_HOST"`
	Port        int    `yaml:"port" env:"ECONMAP_MIRROR_PORT"`
	Database    string `yaml:"database" env:"ECONMAP_MIRROR_DATABASE"`
	Username    string `yaml:"username" env:"ECONMAP_MIRROR_USERNAME"`
	SSLMode     string `yaml:"ssl_mode" env:"ECONMAP_MIRROR_SSL_MODE"`
	Table       string `yaml:"table" env:"ECONMAP_MIRROR_TABLE" default:"economic_data"`
	PasswordKey string `yaml:"password_key" env:"ECONMAP_MIRROR_PASSWORD_KEY" default:"mirror"`

	// Keychain also consults the macOS Keychain for the password (default: false)
	Keychain bool `yaml:"keychain" env:"ECONMAP_MIRROR_KEYCHAIN" default:"false"`
}

// TriggerConfig controls re-runs of the pipeline.
type TriggerConfig struct {
	// Watch re-runs the pipeline when an input file changes
	Watch bool `yaml:"watch" env:"ECONMAP_WATCH" default:"false"`

	// Schedule is a cron expression (5 fields, or descriptors like @daily)
	Schedule string `yaml:"schedule" env:"ECONMAP_SCHEDULE"`

	// Debounce is the quiet period after a file event (default: 500ms)
	Debounce time.Duration `yaml:"debounce" env:"ECONMAP_WATCH_DEBOUNCE" default:"500ms"`
}

// MapConfig configures the map generator.
type MapConfig struct {
	// Input defaults to the pipeline output path when empty
	Input string `yaml:"input" env:"ECONMAP_MAP_INPUT"`

	Output string `yaml:"output" env:"ECONMAP_MAP_OUTPUT" default:"interactive_economic_map.html"`

	// FromMirror reads the table back from the mirror database instead of the CSV
	FromMirror bool `yaml:"from_mirror" env:"ECONMAP_MAP_FROM_MIRROR" default:"false"`

	// PlotlyURL is the plotly.js bundle loaded by the page
	PlotlyURL string `yaml:"plotly_url" env:"ECONMAP_PLOTLY_URL" default:"https://cdn.plot.ly/plotly-2.35.2.min.js"`
}

// HistoryConfig locates the run history database. An empty path disables it.
type HistoryConfig struct {
	Path string `yaml:"path" env:"ECONMAP_HISTORY_PATH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"ECONMAP_LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"ECONMAP_LOG_FORMAT" default:"text"`
}

// MapInput returns the CSV the map generator reads.
func (c *Config) MapInput() string {
	if c.Map.Input != "" {
		return c.Map.Input
	}
	return c.Output.Path
}
