package config

import "time"

// Config is the mdpad configuration, read from config.yaml and MDPAD_* variables.
type Config struct {
	// Database is the SQLite preference file. Empty means <config dir>/mdpad.sqlite.
	Database string         `yaml:"database" koanf:"database"`
	Autosave AutosaveConfig `yaml:"autosave" koanf:"autosave"`
	Render   RenderConfig   `yaml:"render" koanf:"render"`
	Export   ExportConfig   `yaml:"export" koanf:"export"`
	Preview  PreviewConfig  `yaml:"preview" koanf:"preview"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
	Editor   EditorConfig   `yaml:"editor" koanf:"editor"`
}

type AutosaveConfig struct {
	Delay time.Duration `yaml:"delay" koanf:"delay"`
}

type RenderConfig struct {
	HardWraps      bool   `yaml:"hard_wraps" koanf:"hard_wraps"`
	UnsafeHTML     bool   `yaml:"unsafe_html" koanf:"unsafe_html"`
	Emoji          bool   `yaml:"emoji" koanf:"emoji"`
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
}

// ExportConfig decides the exported file's name and declared type.
type ExportConfig struct {
	Dir        string `yaml:"dir" koanf:"dir"`
	BaseName   string `yaml:"base_name" koanf:"base_name"`
	Extension  string `yaml:"extension" koanf:"extension"`
	MediaType  string `yaml:"media_type" koanf:"media_type"`
	Standalone bool   `yaml:"standalone" koanf:"standalone"`
	Title      string `yaml:"title" koanf:"title"`
}

type PreviewConfig struct {
	Addr         string        `yaml:"addr" koanf:"addr"`
	PollInterval time.Duration `yaml:"poll_interval" koanf:"poll_interval"`
}

type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	// File receives TUI logs; the terminal itself is never written to.
	File string `yaml:"file" koanf:"file"`
}

type EditorConfig struct {
	// Command overrides $VISUAL / $EDITOR for ctrl+x.
	Command string `yaml:"command" koanf:"command"`
}
