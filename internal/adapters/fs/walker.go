// Package fs provides the filesystem adapters: output-tree mirroring and
// staleness scanning.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file tree walking with ignore patterns.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// errIgnoredFile marks a file (not a directory) matched by an ignore pattern.
var errIgnoredFile = errors.New("ignored file")

// WalkDirs yields every directory under root, root itself first. A non-nil
// error terminates the sequence; callers must treat it as fatal.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			switch skip := w.shouldSkip(d, ignores); skip {
			case nil:
			case errIgnoredFile:
				return nil
			default:
				return skip
			}

			if !d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// WalkFiles yields every regular file under root in traversal order. A
// non-nil error terminates the sequence.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			switch skip := w.shouldSkip(d, ignores); skip {
			case nil:
			case errIgnoredFile:
				return nil
			default:
				return skip
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkip returns filepath.SkipDir for ignored directories, errIgnoredFile
// for ignored files, and nil otherwise.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	// Version control metadata never holds source units.
	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errIgnoredFile
		}
	}

	return nil
}
