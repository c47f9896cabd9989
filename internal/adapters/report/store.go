// Package report persists run reports as JSON files.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using one flat JSON file per run.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put writes the report to the file at path, creating parent directories
// as needed.
func (s *Store) Put(path string, rep domain.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}

	dir := filepath.Dir(filepath.Clean(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create report directory"), "path", dir)
	}

	//nolint:gosec // Path is provided by the user via the --report flag
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write report"), "path", path)
	}

	return nil
}

// Get reads a previously persisted report. A missing file yields nil, nil.
func (s *Store) Get(path string) (*domain.Report, error) {
	//nolint:gosec // Path is provided by the user via the --report flag
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read report"), "path", path)
	}

	var rep domain.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal report"), "path", path)
	}

	return &rep, nil
}
