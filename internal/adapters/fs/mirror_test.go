package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/figc/internal/adapters/fs"
	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newMirror(t *testing.T) *fs.Mirror {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return fs.NewMirror(fs.NewWalker(), log)
}

func TestMirror_Completeness(t *testing.T) {
	srcRoot := t.TempDir()
	outRoot := filepath.Join(t.TempDir(), "out")
	mkdir(t, filepath.Join(srcRoot, "fig", "flow", "deep"))
	mkdir(t, filepath.Join(srcRoot, "diagrams"))
	touch(t, filepath.Join(srcRoot, "fig", "a.tex"))

	m := newMirror(t)
	if err := m.Mirror(srcRoot, outRoot, nil); err != nil {
		t.Fatalf("Mirror failed: %v", err)
	}

	for _, rel := range []string{".", "fig", filepath.Join("fig", "flow"), filepath.Join("fig", "flow", "deep"), "diagrams"} {
		info, err := os.Stat(filepath.Join(outRoot, rel))
		if err != nil {
			t.Errorf("expected mirrored directory %q: %v", rel, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("expected %q to be a directory", rel)
		}
	}
}

func TestMirror_Idempotence(t *testing.T) {
	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	mkdir(t, filepath.Join(srcRoot, "fig"))
	touch(t, filepath.Join(srcRoot, "fig", "a.tex"))

	m := newMirror(t)
	if err := m.Mirror(srcRoot, outRoot, nil); err != nil {
		t.Fatalf("first Mirror failed: %v", err)
	}

	before, err := os.Stat(filepath.Join(outRoot, "fig"))
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Mirror(srcRoot, outRoot, nil); err != nil {
		t.Fatalf("second Mirror failed: %v", err)
	}

	after, err := os.Stat(filepath.Join(outRoot, "fig"))
	if err != nil {
		t.Fatal(err)
	}
	if !before.ModTime().Equal(after.ModTime()) {
		t.Error("expected second Mirror to leave existing directories untouched")
	}
}

func TestMirror_MissingSourceRoot(t *testing.T) {
	m := newMirror(t)
	err := m.Mirror(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)

	if !errors.Is(err, domain.ErrSourceRootMissing) {
		t.Fatalf("expected ErrSourceRootMissing, got: %v", err)
	}
}

func TestMirror_EmptySourceRoot(t *testing.T) {
	m := newMirror(t)
	err := m.Mirror(t.TempDir(), t.TempDir(), nil)

	if !errors.Is(err, domain.ErrSourceRootEmpty) {
		t.Fatalf("expected ErrSourceRootEmpty, got: %v", err)
	}
}

func TestMirror_SourceRootIsFile(t *testing.T) {
	srcRoot := filepath.Join(t.TempDir(), "afile")
	touch(t, srcRoot)

	m := newMirror(t)
	err := m.Mirror(srcRoot, t.TempDir(), nil)

	if !errors.Is(err, domain.ErrSourceRootMissing) {
		t.Fatalf("expected ErrSourceRootMissing for a non-directory root, got: %v", err)
	}
}

func TestMirror_SkipsIgnoredSubtrees(t *testing.T) {
	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	mkdir(t, filepath.Join(srcRoot, "fig"))
	mkdir(t, filepath.Join(srcRoot, "scratch", "inner"))
	touch(t, filepath.Join(srcRoot, "fig", "a.tex"))

	m := newMirror(t)
	if err := m.Mirror(srcRoot, outRoot, []string{"scratch"}); err != nil {
		t.Fatalf("Mirror failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outRoot, "scratch")); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected ignored subtree not to be mirrored")
	}
	if _, err := os.Stat(filepath.Join(outRoot, "fig")); err != nil {
		t.Errorf("expected fig to be mirrored: %v", err)
	}
}
