// Package log provides the structured logger used by the converter and
// its command-line tool.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger. A nil *Logger is valid and discards
// everything.
type Logger struct {
	*slog.Logger
	LogFile string
}

// New returns a JSON logger at the given level ("debug", "info", "warn" or
// "error"). If file is empty output goes to stderr, otherwise to a rotated
// log file.
func New(level string, file string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		w = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // MB
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
	}

	l := &Logger{
		Logger:  slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})),
		LogFile: file,
	}

	if lvl <= slog.LevelDebug {
		l.logBuild()
	}
	return l, nil
}

// Wrap adapts an existing slog.Logger. Wrap(nil) returns nil.
func Wrap(lg *slog.Logger) *Logger {
	if lg == nil {
		return nil
	}
	return &Logger{Logger: lg}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
	}
}

func (l *Logger) logBuild() {
	l.Debug("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))

	if bi, ok := debug.ReadBuildInfo(); ok {
		var deps []any
		for _, dep := range bi.Deps {
			deps = append(deps, slog.String(dep.Path, dep.Version))
		}
		l.Debug("Build",
			slog.String("Go version", bi.GoVersion),
			slog.String("Path", bi.Path),
			slog.Group("Dependencies", deps...))
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.Logger.Error(msg, args...)
	}
}
