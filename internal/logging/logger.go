package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/llmsdk/common"
)

type Logger interface {
	Debug(msg string, args ...any)
	Debugf(format string, args ...any)
	Info(msg string, args ...any)
	Infof(format string, args ...any)
	Warn(msg string, args ...any)
	Warnf(format string, args ...any)
	Error(msg string, args ...any)
	Errorf(format string, args ...any)
	SetLevel(level common.LogLevel)
}

// levelOff sits above every level slog emits, so nothing passes the handler.
const levelOff = slog.LevelError + 4

type defaultLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewDefaultLogger returns a text logger on stderr with logging disabled.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, common.DisabledLevel)
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level common.LogLevel) Logger {
	lv := new(slog.LevelVar)
	lv.Set(toSlogLevel(level))
	return &defaultLogger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})),
		level:  lv,
	}
}

// FromSlog adapts an existing slog.Logger. Level filtering stays with the
// caller's handler; SetLevel can only raise the threshold.
func FromSlog(l *slog.Logger) Logger {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelDebug)
	return &defaultLogger{logger: l, level: lv}
}

func toSlogLevel(level common.LogLevel) slog.Level {
	switch level {
	case common.DebugLevel:
		return slog.LevelDebug
	case common.InfoLevel:
		return slog.LevelInfo
	case common.WarnLevel:
		return slog.LevelWarn
	case common.ErrorLevel:
		return slog.LevelError
	default:
		return levelOff
	}
}

func (l *defaultLogger) log(level slog.Level, msg string, args ...any) {
	if level < l.level.Level() {
		return
	}
	l.logger.Log(context.Background(), level, msg, args...)
}

func (l *defaultLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *defaultLogger) Debugf(format string, args ...any) {
	l.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}
func (l *defaultLogger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args...) }
func (l *defaultLogger) Infof(format string, args ...any) {
	l.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}
func (l *defaultLogger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args...) }
func (l *defaultLogger) Warnf(format string, args ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, args...))
}
func (l *defaultLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }
func (l *defaultLogger) Errorf(format string, args ...any) {
	l.log(slog.LevelError, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) SetLevel(level common.LogLevel) {
	l.level.Set(toSlogLevel(level))
}
