// Package logging builds the zerolog logger shared by the API and the lint CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"stereos/internal/config"
)

// New returns a JSON logger on stdout, or a human readable console logger in development.
func New(cfg *config.AppConfig) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return NewWithWriter(out, cfg.LogLevel)
}

// NewWithWriter returns a JSON logger writing to w at the given level.
// Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
