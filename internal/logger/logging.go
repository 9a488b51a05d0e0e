// Package logger provides modifications to charmbracelet/log's default
// logger to be used in various files/packages.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupFile points the process-wide default logger at a file sink with
// debug verbosity. The lookup pipeline logs its transport and parse
// failures through the default logger, so everything lands in one place.
// Returns the open file; the caller closes it on shutdown.
func SetupFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	return f, nil
}
