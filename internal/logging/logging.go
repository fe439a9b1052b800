package logging

import "strings"

// Logger is the leveled logging contract used across mdpad. It follows the
// shape of github.com/goliatone/go-logger so the glog provider plugs in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// Provider hands out named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

const rootModule = "mdpad"

// ModuleLogger returns the logger for module, tagged with a "module" field.
// A nil provider yields a no-op logger.
func ModuleLogger(p Provider, module string) Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}
	var l Logger = NoOp()
	if p != nil {
		if got := p.GetLogger(module); got != nil {
			l = got
		}
	}
	return l.WithFields(map[string]any{"module": module})
}

// OrNoOp returns l, or a no-op logger when l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return l
}

func NoOp() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger { return n }

type noopProvider struct{}

func (noopProvider) GetLogger(string) Logger { return noopLogger{} }

// NoOpProvider discards everything.
func NoOpProvider() Provider { return noopProvider{} }
