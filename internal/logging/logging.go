// Package logging configures the logrus logger shared by every component.
//
// The terminal belongs to the TUI, so log output goes to a file.
//
//	logger, closeFn, err := logging.New(cfg.Log)
//	defer closeFn()
//	log := logging.For(logger, "search")
//	log.WithField("query", q).Debug("lookup issued")
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"cinegrip/internal/config"
)

// New builds a logger from the log settings. The returned func closes the
// log file, if any.
func New(cfg config.LogSettings) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	if cfg.JSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			DisableColors:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	levelStr := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	closeFn := func() error { return nil }
	switch cfg.File {
	case "":
		log.SetOutput(io.Discard)
	case "-":
		log.SetOutput(os.Stderr)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closeFn = f.Close
	}

	return log, closeFn, nil
}

// For returns an entry tagged with the component name
func For(log *logrus.Logger, component string) *logrus.Entry {
	if log == nil {
		log = Discard()
	}
	return log.WithField("component", component)
}

// Discard returns a logger that drops everything, handy in tests
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
