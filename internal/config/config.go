package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"mdpad/internal/editor"
	"mdpad/internal/export"
)

const envPrefix = "MDPAD_"

func DefaultConfig() *Config {
	return &Config{
		Autosave: AutosaveConfig{Delay: editor.DefaultAutosaveDelay},
		Render: RenderConfig{
			HardWraps:      true,
			UnsafeHTML:     true,
			Emoji:          true,
			HighlightStyle: "github",
		},
		Export: ExportConfig{
			BaseName:  export.DefaultBaseName,
			Extension: export.DefaultExtension,
			MediaType: export.DefaultMediaType,
		},
		Preview: PreviewConfig{
			Addr:         "127.0.0.1:7070",
			PollInterval: 750 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Dir is where config.yaml and the database live. MDPAD_CONFIG_DIR overrides it.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("MDPAD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mdpad"), nil
}

// DefaultPath is <Dir>/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load starts from defaults, overlays the YAML file at path when it exists,
// then MDPAD_* environment variables. A double underscore separates nested
// keys: MDPAD_AUTOSAVE__DELAY=2s sets autosave.delay.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if strings.TrimSpace(cfg.Database) == "" {
		dir, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		cfg.Database = filepath.Join(dir, "mdpad.sqlite")
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

var validFormats = map[string]bool{
	"console": true, "json": true, "pretty": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Autosave.Delay <= 0 {
		return fmt.Errorf("autosave.delay must be positive, got %s", c.Autosave.Delay)
	}
	if c.Preview.PollInterval <= 0 {
		return fmt.Errorf("preview.poll_interval must be positive, got %s", c.Preview.PollInterval)
	}
	if strings.TrimSpace(c.Preview.Addr) == "" {
		return fmt.Errorf("preview.addr is required")
	}
	if lvl := strings.ToLower(strings.TrimSpace(c.Log.Level)); lvl != "" && !validLevels[lvl] {
		return fmt.Errorf("invalid log.level %q: must be one of trace, debug, info, warn, error", c.Log.Level)
	}
	if f := strings.ToLower(strings.TrimSpace(c.Log.Format)); f != "" && !validFormats[f] {
		return fmt.Errorf("invalid log.format %q: must be one of console, json, pretty", c.Log.Format)
	}
	if strings.ContainsAny(c.Export.Extension, `/\`) {
		return fmt.Errorf("invalid export.extension %q", c.Export.Extension)
	}
	return nil
}

// ExportOptions maps the export section onto export.Options.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Dir:        c.Export.Dir,
		BaseName:   c.Export.BaseName,
		Extension:  c.Export.Extension,
		MediaType:  c.Export.MediaType,
		Standalone: c.Export.Standalone,
		Title:      c.Export.Title,
	}.Normalize()
}
