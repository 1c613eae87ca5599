// Package logging configures the shared logrus logger.
//
// The console owns the terminal, so log output goes to a file under the
// configured log directory. Transport events from the sync core are logged
// at debug level only; nothing in this program surfaces errors to the
// operator outside the cell grid itself.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	root   *logrus.Logger
	rootMu sync.Mutex
)

// Setup initializes the shared logger writing to path. Failures to open the
// log file are not fatal: output is discarded and the program carries on.
func Setup(path string, verbose bool) *logrus.Logger {
	rootMu.Lock()
	defer rootMu.Unlock()

	if root != nil {
		return root
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.SetOutput(io.Discard)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				logger.SetOutput(file)
			}
		}
	}

	root = logger
	return root
}

// NewLogger returns a component-tagged entry on the shared logger. Setup
// must run first; otherwise the entry discards everything.
func NewLogger(component string) *logrus.Entry {
	rootMu.Lock()
	defer rootMu.Unlock()

	if root == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		return logger.WithField("component", component)
	}
	return root.WithField("component", component)
}
