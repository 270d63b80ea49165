package etl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ── Source ──────────────────────────────────────────────────
// A Source extracts a table from an external system.
// Implementations live in etl/sources/, one file per source type.

// SourceConfig is an opaque configuration map parsed per source type.
type SourceConfig map[string]any

// ConfigField describes a single configuration input for a source.
type ConfigField struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
	Help     string `json:"help,omitempty"`
}

// SourceSpec describes a source type and its config fields.
type SourceSpec struct {
	Type         string        `json:"type"`
	Label        string        `json:"label"`
	ConfigFields []ConfigField `json:"configFields"`
}

// Source is the interface every data source must implement.
type Source interface {
	// Spec returns metadata about this source type.
	Spec() SourceSpec

	// Discover introspects the source and returns its schema without reading rows.
	Discover(ctx context.Context, cfg SourceConfig) (*Schema, error)

	// Read loads the whole dataset.
	Read(ctx context.Context, cfg SourceConfig) (*Table, error)
}

// ValidateConfig checks that every required field of spec is set in cfg.
func ValidateConfig(spec SourceSpec, cfg SourceConfig) error {
	var missing []string
	for _, f := range spec.ConfigFields {
		if !f.Required {
			continue
		}
		if s, ok := cfg[f.Key].(string); !ok || strings.TrimSpace(s) == "" {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing required config: %s", spec.Type, strings.Join(missing, ", "))
	}
	return nil
}

// ── Source Registry ────────────────────────────────────────
// Compile-time registration via init() in each source file.

// ErrUnknownSource is returned by GetSource for unregistered types.
var ErrUnknownSource = errors.New("unknown source type")

var (
	registryMu sync.RWMutex
	registry   = map[string]Source{}
)

// RegisterSource registers a source by its spec type.
// Called from init() in each source implementation file.
func RegisterSource(s Source) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[s.Spec().Type] = s
}

// GetSource returns a registered source by type, or an error if not found.
func GetSource(typ string) (Source, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, typ)
	}
	return s, nil
}

// ListSources returns the specs of all registered sources, sorted by type.
func ListSources() []SourceSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	specs := make([]SourceSpec, 0, len(registry))
	for _, s := range registry {
		specs = append(specs, s.Spec())
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Type < specs[j].Type })
	return specs
}
