package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/r-castano/eleven-usage/internal/logger"
)

// WriteError indicates the report could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteOptions controls serialization and destination paths.
type WriteOptions struct {
	// OutputDir receives the always-on timestamped file.
	OutputDir string
	// OutputPath is an optional extra destination.
	OutputPath string
	Pretty     bool
}

// Encode serializes the report, indented with two spaces when pretty.
func Encode(rep *Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}

// Write persists the report to the automatic timestamped file and, when
// set, to the user-specified path. It returns every path written.
func Write(rep *Report, opts WriteOptions, now time.Time) ([]string, error) {
	data, err := Encode(rep, opts.Pretty)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	autoPath := filepath.Join(opts.OutputDir, autoFilename(now))
	paths := []string{autoPath}
	if opts.OutputPath != "" {
		paths = append(paths, opts.OutputPath)
	}

	for _, path := range paths {
		if err := os.WriteFile(path, data, 0o640); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
		logger.Info("report saved", "path", path)
	}

	return paths, nil
}

// autoFilename names the archival copy written on every run.
func autoFilename(now time.Time) string {
	return fmt.Sprintf("api_stats_%d.json", now.Unix())
}
