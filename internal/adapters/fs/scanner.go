package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner walks the source tree and selects the units whose artifact is
// missing or stale. It assumes Mirror has already run, so every job's
// output directory exists by the time the job is dispatched.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan returns the worklist of stale units in traversal order. A unit is
// stale iff its artifact does not exist or is strictly older than the
// source; equal modification times count as up to date.
func (s *Scanner) Scan(sourceRoot, outputRoot string, profile domain.Profile) (domain.Worklist, error) {
	var worklist domain.Worklist

	for path, err := range s.walker.WalkFiles(sourceRoot, profile.Ignores) {
		if err != nil {
			return nil, zerr.Wrap(err, "failed to walk source tree")
		}

		base := filepath.Base(path)
		if !strings.HasSuffix(base, profile.SourceExt) {
			continue
		}

		relDir, err := filepath.Rel(sourceRoot, filepath.Dir(path))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize unit directory"), "path", path)
		}

		outDir := filepath.Join(outputRoot, relDir)
		artifact := filepath.Join(outDir, swapExtension(base, profile.SourceExt, profile.ArtifactExt))

		stale, err := isStale(path, artifact)
		if err != nil {
			return nil, err
		}
		if !stale {
			continue
		}

		worklist = append(worklist, domain.Job{
			Unit: domain.Unit{
				SourcePath: domain.NewInternedString(path),
				RelDir:     domain.NewInternedString(relDir),
				Base:       domain.NewInternedString(base),
			},
			OutputDir:    domain.NewInternedString(outDir),
			ArtifactPath: domain.NewInternedString(artifact),
		})
	}

	return worklist, nil
}

// isStale compares modification times. A missing artifact is stale; any
// other stat failure is an I/O error and aborts the scan.
func isStale(sourcePath, artifactPath string) (bool, error) {
	artInfo, err := os.Stat(artifactPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", artifactPath)
	}

	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", sourcePath)
	}

	return srcInfo.ModTime().After(artInfo.ModTime()), nil
}

// swapExtension replaces the trailing source extension with the artifact
// extension. Callers guarantee base ends in sourceExt.
func swapExtension(base, sourceExt, artifactExt string) string {
	return strings.TrimSuffix(base, sourceExt) + artifactExt
}
