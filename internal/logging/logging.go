package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config string to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a console logger writing to w.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}
