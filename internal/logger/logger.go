// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger for the whole application. It starts at warn
// level on stderr so packages can log before Init runs (tests included).
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Options configure Init. Empty fields keep the defaults.
type Options struct {
	Level  string // logrus level name, "info" when empty or invalid
	Format string // "json" or "text"
	File   string // log file path; empty means Fallback
	// Fallback receives output when File is empty. The terminal game passes
	// io.Discard so log lines never land on the tcell screen.
	Fallback io.Writer
}

// Init configures the global logger. It must be called once at startup.
// The returned closer releases the log file, if one was opened.
func Init(opts Options) (io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: opts.File != "",
		})
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		Log.SetOutput(f)
		return f, nil
	}
	if opts.Fallback != nil {
		Log.SetOutput(opts.Fallback)
	} else {
		Log.SetOutput(os.Stdout)
	}
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
