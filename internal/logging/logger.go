// Package logging configures logrus for the arcade. The UI owns the
// terminal, so log output goes to a file (or nowhere).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"arcade/internal/config"

	"github.com/sirupsen/logrus"
)

var (
	base     = newDiscardLogger()
	loggers  = make(map[string]*logrus.Entry)
	loggerMu sync.Mutex
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup configures the shared logger from cfg and returns a closer for the
// log file. Loggers handed out earlier pick up the new settings.
func Setup(cfg config.LoggingConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if cfg.File != "" && cfg.File != "-" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	Configure(out, level, cfg.Format)
	return closer, nil
}

// Configure sets output, level and format ("json" or text) on the shared logger.
func Configure(out io.Writer, level logrus.Level, format string) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	base.SetOutput(out)
	base.SetLevel(level)
	if format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
}

// NewLogger returns the logger for a component, tagged with a "component"
// field. One entry is kept per component.
func NewLogger(component string) *logrus.Entry {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := base.WithField("component", component)
	loggers[component] = l
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
