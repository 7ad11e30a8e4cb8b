package textbind

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// BindingConfig is the plain-data form of a Binding. Inputs and Sink name
// entries in a Registry; an empty input name is a deliberately absent input
// that formats as "".
//
// Pointer fields distinguish "unset" from false so the defaults apply when
// a file omits them: update_on_bind, ellipsis_on_limit and live default to
// true, preview_inputs to ["placeholder"].
type BindingConfig struct {
	Name            string   `json:"name" toml:"name" yaml:"name"`
	Format          string   `json:"format" toml:"format" yaml:"format"`
	Inputs          []string `json:"inputs,omitempty" toml:"inputs" yaml:"inputs,omitempty"`
	PreviewInputs   []string `json:"preview_inputs,omitempty" toml:"preview_inputs" yaml:"preview_inputs,omitempty"`
	UpdateOnBind    *bool    `json:"update_on_bind,omitempty" toml:"update_on_bind" yaml:"update_on_bind,omitempty"`
	LimiterEnabled  bool     `json:"limiter_enabled,omitempty" toml:"limiter_enabled" yaml:"limiter_enabled,omitempty"`
	EllipsisOnLimit *bool    `json:"ellipsis_on_limit,omitempty" toml:"ellipsis_on_limit" yaml:"ellipsis_on_limit,omitempty"`
	Live            *bool    `json:"live,omitempty" toml:"live" yaml:"live,omitempty"`
	Sink            string   `json:"sink,omitempty" toml:"sink" yaml:"sink,omitempty"`
}

// Config is a set of binding definitions, e.g. one per HUD screen.
type Config struct {
	Bindings []BindingConfig `json:"bindings" toml:"bindings" yaml:"bindings"`
}

// ParseConfig decodes data in the given format: "json", "toml" or "yaml"
// ("yml" is accepted too).
func ParseConfig(data []byte, format string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("textbind: parse json config: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("textbind: parse toml config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("textbind: parse toml config: unknown key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("textbind: parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("textbind: unsupported config format %q", format)
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a config file, choosing the format from
// its extension.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textbind: read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// Registry maps names to sources and sinks so bindings can be described in
// configuration files and script steps.
type Registry struct {
	sources map[string]ValueSource
	sinks   map[string]TextSink
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]ValueSource),
		sinks:   make(map[string]TextSink),
	}
}

// RegisterSource adds or replaces a named source.
func (r *Registry) RegisterSource(name string, src ValueSource) {
	r.sources[name] = src
}

// RegisterSink adds or replaces a named sink.
func (r *Registry) RegisterSink(name string, sink TextSink) {
	r.sinks[name] = sink
}

// Source returns the named source.
func (r *Registry) Source(name string) (ValueSource, bool) {
	src, ok := r.sources[name]
	return src, ok
}

// Sink returns the named sink.
func (r *Registry) Sink(name string) (TextSink, bool) {
	sink, ok := r.sinks[name]
	return sink, ok
}

// Build creates an unbound Binding from cfg. Unknown source or sink names
// and templates that are malformed or reference more inputs than cfg lists
// are configuration errors.
func (r *Registry) Build(cfg BindingConfig) (*Binding, error) {
	b := NewBinding(cfg.Format)
	b.Name = cfg.Name
	b.LimiterEnabled = cfg.LimiterEnabled
	if cfg.UpdateOnBind != nil {
		b.UpdateOnBind = *cfg.UpdateOnBind
	}
	if cfg.EllipsisOnLimit != nil {
		b.EllipsisOnLimit = *cfg.EllipsisOnLimit
	}
	if cfg.Live != nil {
		b.Live = *cfg.Live
	}
	if cfg.PreviewInputs != nil {
		b.PreviewInputs = append([]string(nil), cfg.PreviewInputs...)
	}

	b.Inputs = make([]ValueSource, len(cfg.Inputs))
	for i, name := range cfg.Inputs {
		if name == "" {
			continue
		}
		src, ok := r.sources[name]
		if !ok {
			return nil, fmt.Errorf("textbind: build %q input %d: %w %q", cfg.Name, i, ErrUnknownSource, name)
		}
		b.Inputs[i] = src
	}

	if cfg.Sink != "" {
		sink, ok := r.sinks[cfg.Sink]
		if !ok {
			return nil, fmt.Errorf("textbind: build %q: %w %q", cfg.Name, ErrUnknownSink, cfg.Sink)
		}
		b.Sink = sink
	}

	if len(b.Inputs) > 0 {
		t, err := ParseTemplate(b.Format)
		if err != nil {
			return nil, fmt.Errorf("textbind: build %q: %w", cfg.Name, err)
		}
		if t.MaxIndex() >= len(b.Inputs) {
			return nil, fmt.Errorf("textbind: build %q: %w", cfg.Name,
				outOfRange(b.Format, -1, t.MaxIndex(), len(b.Inputs)))
		}
	}
	return b, nil
}

// BuildAll builds every binding in cfg, stopping at the first error.
func (r *Registry) BuildAll(cfg *Config) ([]*Binding, error) {
	out := make([]*Binding, 0, len(cfg.Bindings))
	for _, bc := range cfg.Bindings {
		b, err := r.Build(bc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
