package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, request logging is off.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// defaultLogLevel follows the installed logger's own level, so the single
// -log-level / HEARTD_LOG_LEVEL knob drives request logging too.
func defaultLogLevel() LogLevel {
	if zlog == nil {
		return LevelOff
	}
	switch lvl := zlog.GetLevel(); {
	case lvl <= zerolog.DebugLevel:
		return LevelDebug
	case lvl <= zerolog.InfoLevel:
		return LevelInfo
	case lvl <= zerolog.ErrorLevel:
		return LevelError
	default:
		return LevelOff
	}
}

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel()
}
