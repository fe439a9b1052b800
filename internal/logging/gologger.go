package logging

import (
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Config selects level and output format for the go-logger provider.
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

// GoLogger is a Provider backed by go-logger.
type GoLogger struct {
	root *glog.BaseLogger
}

var _ Provider = (*GoLogger)(nil)

func NewGoLogger(cfg Config) (*GoLogger, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	return &GoLogger{root: glog.NewLogger(options...)}, nil
}

func (p *GoLogger) GetLogger(name string) Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	var inner glog.Logger
	if name == "" {
		inner = p.root
	} else {
		inner = p.root.GetLogger(name)
	}
	return wrapGlog(inner)
}

func wrapGlog(inner glog.Logger) Logger {
	if inner == nil {
		return NoOp()
	}
	return &glogAdapter{inner: inner}
}

type glogAdapter struct {
	inner glog.Logger
}

func (l *glogAdapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *glogAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *glogAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *glogAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *glogAdapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

func (l *glogAdapter) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return wrapGlog(with.WithFields(copied))
	}
	return &fieldsAdapter{inner: l, args: fieldArgs(fields)}
}

// fieldsAdapter prepends fixed key/value pairs when the inner logger has no
// native field support.
type fieldsAdapter struct {
	inner Logger
	args  []any
}

func (l *fieldsAdapter) Trace(msg string, args ...any) { l.inner.Trace(msg, l.with(args)...) }
func (l *fieldsAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, l.with(args)...) }
func (l *fieldsAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, l.with(args)...) }
func (l *fieldsAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, l.with(args)...) }
func (l *fieldsAdapter) Error(msg string, args ...any) { l.inner.Error(msg, l.with(args)...) }

func (l *fieldsAdapter) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &fieldsAdapter{inner: l.inner, args: append(append([]any{}, l.args...), fieldArgs(fields)...)}
}

func (l *fieldsAdapter) with(args []any) []any {
	out := make([]any, 0, len(l.args)+len(args))
	out = append(out, l.args...)
	return append(out, args...)
}

func fieldArgs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
