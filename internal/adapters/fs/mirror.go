package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Mirrorer = (*Mirror)(nil)

// Mirror replicates the source tree's directory skeleton under the output
// root. It creates directories only; it never reads or writes files.
type Mirror struct {
	walker *Walker
	logger ports.Logger
}

// NewMirror creates a new Mirror.
func NewMirror(walker *Walker, logger ports.Logger) *Mirror {
	return &Mirror{walker: walker, logger: logger}
}

// Mirror ensures every directory under sourceRoot exists at the same
// relative path under outputRoot. Creation uses MkdirAll, so parents are
// guaranteed before children and repeated runs are no-ops.
func (m *Mirror) Mirror(sourceRoot, outputRoot string, ignores []string) error {
	if err := checkSourceRoot(sourceRoot); err != nil {
		return err
	}

	for dir, err := range m.walker.WalkDirs(sourceRoot, ignores) {
		if err != nil {
			return zerr.Wrap(err, "failed to walk source tree")
		}

		rel, err := filepath.Rel(sourceRoot, dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize directory"), "path", dir)
		}

		target := filepath.Join(outputRoot, rel)
		if _, err := os.Stat(target); err == nil {
			continue
		}

		if err := os.MkdirAll(target, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", target)
		}
		m.logger.Info("created directory: " + target)
	}

	return nil
}

// checkSourceRoot enforces the run preconditions: the source root must exist
// and must not be empty. Both violations are configuration errors, reported
// before any directory is created.
func checkSourceRoot(sourceRoot string) error {
	info, err := os.Stat(sourceRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrSourceRootMissing, "path", sourceRoot)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat source root"), "path", sourceRoot)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrSourceRootMissing, "path", sourceRoot)
	}

	entries, err := os.ReadDir(sourceRoot)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source root"), "path", sourceRoot)
	}
	if len(entries) == 0 {
		return zerr.With(domain.ErrSourceRootEmpty, "path", sourceRoot)
	}

	return nil
}
