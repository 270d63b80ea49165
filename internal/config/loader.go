package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"econmap/internal/domain"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Load builds the configuration from defaults, the YAML file at path (when
// path is non-empty) and the environment, then validates it. CLI flags are
// applied by the caller afterwards, followed by another Validate.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.Getenv)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, getenv func(string) string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
	}

	if err := loadEnv(reflect.ValueOf(cfg).Elem(), getenv); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns a Config populated from the default tags.
func Defaults() *Config {
	cfg := &Config{}
	if err := applyDefaults(reflect.ValueOf(cfg).Elem()); err != nil {
		panic(fmt.Sprintf("config: bad default tag: %v", err))
	}
	return cfg
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	// Keys absent from the file keep their current (default) values.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// applyDefaults recursively sets fields from their default tags.
func applyDefaults(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		if !fieldVal.CanSet() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			if err := applyDefaults(fieldVal); err != nil {
				return err
			}
			continue
		}
		def := field.Tag.Get("default")
		if def == "" {
			continue
		}
		if err := setField(fieldVal, def); err != nil {
			return fmt.Errorf("%s: %w", field.Name, err)
		}
	}
	return nil
}

// loadEnv recursively overrides fields whose env variable is set.
func loadEnv(v reflect.Value, getenv func(string) string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		if !fieldVal.CanSet() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			if err := loadEnv(fieldVal, getenv); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}
		value := getenv(envName)
		if value == "" {
			continue
		}
		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}
	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Input.GDP) == "" {
		errs = append(errs, "input.gdp is required")
	}
	if strings.TrimSpace(c.Input.Inflation) == "" {
		errs = append(errs, "input.inflation is required")
	}
	if len(c.Input.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("input.delimiter (%q) must be a single character", c.Input.Delimiter))
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		errs = append(errs, "output.path is required")
	}

	if c.Years.Min > c.Years.Max {
		errs = append(errs, fmt.Sprintf("years.min (%d) must be <= years.max (%d)", c.Years.Min, c.Years.Max))
	}
	if c.Resolve.UnresolvedSample < 0 {
		errs = append(errs, "resolve.unresolved_sample must be non-negative")
	}

	driver := domain.MirrorDriver(strings.ToLower(c.Mirror.Driver))
	if !driver.Valid() {
		errs = append(errs, fmt.Sprintf("mirror.driver (%q) must be one of: sqlite, postgres, mysql, mongodb", c.Mirror.Driver))
	} else if driver != domain.MirrorDriverNone {
		if strings.TrimSpace(c.Mirror.Host) == "" {
			errs = append(errs, "mirror.host is required when mirror.driver is set")
		}
		if strings.TrimSpace(c.Mirror.Table) == "" {
			errs = append(errs, "mirror.table is required when mirror.driver is set")
		}
	}
	if c.Mirror.Port < 0 || c.Mirror.Port > 65535 {
		errs = append(errs, fmt.Sprintf("mirror.port (%d) must be 0-65535", c.Mirror.Port))
	}

	if c.Trigger.Schedule != "" {
		if _, err := cron.ParseStandard(c.Trigger.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("trigger.schedule (%q): %v", c.Trigger.Schedule, err))
		}
	}
	if c.Trigger.Debounce <= 0 {
		errs = append(errs, "trigger.debounce must be positive")
	}

	if c.Map.FromMirror && driver == domain.MirrorDriverNone {
		errs = append(errs, "map.from_mirror requires mirror.driver")
	}
	if strings.TrimSpace(c.Map.Output) == "" {
		errs = append(errs, "map.output is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}

// MirrorConnection converts the mirror section to a connection, or nil when
// the mirror is disabled.
func (c *Config) MirrorConnection() *domain.MirrorConnection {
	driver := domain.MirrorDriver(strings.ToLower(c.Mirror.Driver))
	if driver == domain.MirrorDriverNone {
		return nil
	}
	return &domain.MirrorConnection{
		Driver:      driver,
		Host:        c.Mirror.Host,
		Port:        c.Mirror.Port,
		Database:    c.Mirror.Database,
		Username:    c.Mirror.Username,
		SSLMode:     c.Mirror.SSLMode,
		Table:       c.Mirror.Table,
		PasswordKey: c.Mirror.PasswordKey,
	}
}

// String returns a log-safe summary. Passwords are never part of Config.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Input: {GDP: %q, Inflation: %q}, ", c.Input.GDP, c.Input.Inflation)
	fmt.Fprintf(&b, "Output: %q, Years: %d-%d, ", c.Output.Path, c.Years.Min, c.Years.Max)
	fmt.Fprintf(&b, "Mirror: {Driver: %q, Table: %q}, ", c.Mirror.Driver, c.Mirror.Table)
	fmt.Fprintf(&b, "Trigger: {Watch: %v, Schedule: %q}, ", c.Trigger.Watch, c.Trigger.Schedule)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}
