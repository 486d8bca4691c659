package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage handles writing calendar documents to the output directory.
type Storage struct {
	outputDir string
}

// New creates a Storage instance, expanding a leading ~ and creating the
// output directory if it doesn't exist.
func New(outputDir string) (*Storage, error) {
	if strings.HasPrefix(outputDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outputDir = filepath.Join(home, outputDir[2:])
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		outputDir: outputDir,
	}, nil
}

// Dir returns the resolved output directory.
func (s *Storage) Dir() string {
	return s.outputDir
}

// WriteCalendar writes one rendered .ics document under the output
// directory.
func (s *Storage) WriteCalendar(filename, ics string) error {
	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// WriteHealthMarker records the completion time of a run at path. The path
// is independent of the output directory so monitoring can live elsewhere.
func WriteHealthMarker(path string, at time.Time) error {
	data := at.UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing health marker: %w", err)
	}
	return nil
}
