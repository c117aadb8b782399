// internal/logging/logging.go

// Package logging configures the process-wide structured logger: a text
// handler on stderr, optionally duplicated to a file under --log-path.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Levels accepted by --verbosity. CRITICAL is kept as an alias for ERROR to
// match the original tool family's flag values.
var levels = map[string]slog.Level{
	"DEBUG":    slog.LevelDebug,
	"INFO":     slog.LevelInfo,
	"WARN":     slog.LevelWarn,
	"ERROR":    slog.LevelError,
	"CRITICAL": slog.LevelError,
}

// New builds the logger. When logPath is non-empty, records are also
// appended to <logPath>/mlboot.log; the returned closer releases that file.
func New(stderr io.Writer, verbosity, logPath string) (*slog.Logger, func() error, error) {
	level, ok := levels[verbosity]
	if !ok {
		return nil, nil, fmt.Errorf("invalid --verbosity %q", verbosity)
	}

	w := stderr
	closer := func() error { return nil }
	if logPath != "" {
		fh, err := os.OpenFile(filepath.Join(logPath, "mlboot.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(stderr, fh)
		closer = fh.Close
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
