package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level orders severities for the writer provider.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Writer is a line-oriented Provider for sinks the terminal UI does not own,
// such as the file opened by tea.LogToFile.
type Writer struct {
	w     io.Writer
	min   Level
	clock func() time.Time
	mu    *sync.Mutex
}

var _ Provider = (*Writer)(nil)

func NewWriter(w io.Writer, min Level) *Writer {
	return &Writer{w: w, min: min, clock: time.Now, mu: &sync.Mutex{}}
}

func (p *Writer) GetLogger(name string) Logger {
	if p == nil || p.w == nil {
		return NoOp()
	}
	return &writerLogger{p: p, fields: map[string]any{"logger": name}}
}

type writerLogger struct {
	p      *Writer
	fields map[string]any
}

func (l *writerLogger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args) }
func (l *writerLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }
func (l *writerLogger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args) }
func (l *writerLogger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args) }
func (l *writerLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }

func (l *writerLogger) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &writerLogger{p: l.p, fields: merged}
}

func (l *writerLogger) log(level Level, msg string, args []any) {
	if level < l.p.min {
		return
	}
	fields := make(map[string]any, len(l.fields)+len(args)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	for i := 0; i < len(args); i += 2 {
		if i == len(args)-1 {
			fields[fmt.Sprintf("arg_%d", i)] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = fmt.Sprintf("arg_%d", i)
		}
		fields[key] = args[i+1]
	}

	line := formatLine(l.p.clock().UTC(), level, msg, fields)

	l.p.mu.Lock()
	defer l.p.mu.Unlock()
	_, _ = io.WriteString(l.p.w, line+"\n")
}

func formatLine(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
