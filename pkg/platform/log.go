package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-drift/blocks/pkg/errors"
)

// Priority is the severity of a diagnostic record. Values match the
// Android log priorities so they can be passed to logcat unchanged.
type Priority int

const (
	PriorityVerbose Priority = 2
	PriorityDebug   Priority = 3
	PriorityInfo    Priority = 4
	PriorityWarn    Priority = 5
	PriorityError   Priority = 6
)

func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

func (p Priority) level() slog.Level {
	switch {
	case p <= PriorityDebug:
		return slog.LevelDebug
	case p == PriorityInfo:
		return slog.LevelInfo
	case p == PriorityWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Logger is the diagnostic sink. It accepts a category tag and a free-text message.
type Logger interface {
	Log(priority Priority, tag, message string)
}

// SlogLogger writes diagnostic records through a slog.Logger.
type SlogLogger struct {
	Logger *slog.Logger
}

// Log emits one record with the tag as an attribute.
func (l SlogLogger) Log(priority Priority, tag, message string) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), priority.level(), message, "tag", tag)
}

// LogChannelName is the channel used to forward records to the native log.
const LogChannelName = "drift/log"

// ChannelLogger forwards records to the native log (logcat on Android).
type ChannelLogger struct {
	channel *MethodChannel
}

// NewChannelLogger creates a logger bound to the native log channel.
func NewChannelLogger() *ChannelLogger {
	return &ChannelLogger{channel: NewMethodChannel(LogChannelName)}
}

// Log forwards the record. Delivery failures go to the error handler and
// are otherwise ignored.
func (l *ChannelLogger) Log(priority Priority, tag, message string) {
	_, err := l.channel.Invoke("log", map[string]any{
		"priority": int(priority),
		"tag":      tag,
		"message":  message,
	})
	if err != nil {
		errors.ReportOp("platform.ChannelLogger.Log", errors.KindPlatform, LogChannelName, err)
	}
}

// MultiLogger fans a record out to several sinks in order.
type MultiLogger []Logger

// Log forwards to every sink.
func (m MultiLogger) Log(priority Priority, tag, message string) {
	for _, l := range m {
		l.Log(priority, tag, message)
	}
}

// NewSlog builds a slog.Logger writing to w. format is "text" or "json";
// level is one of debug, info, warn, error and defaults to info.
func NewSlog(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "verbose":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
