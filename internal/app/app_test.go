package app_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/figc/internal/adapters/fs"
	"go.trai.ch/figc/internal/adapters/latex"
	"go.trai.ch/figc/internal/adapters/report"
	"go.trai.ch/figc/internal/adapters/telemetry"
	"go.trai.ch/figc/internal/app"
	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports/mocks"
	"go.trai.ch/figc/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

// stubRenderer writes a shell script that mimics the renderer: it parses
// --output-directory and the positional source argument, then creates the
// expected artifact next to nothing else.
func stubRenderer(t *testing.T, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub renderer requires a POSIX shell")
	}

	script := `#!/bin/sh
out=""
src=""
for arg in "$@"; do
  case "$arg" in
    --output-directory=*) out="${arg#--output-directory=}" ;;
    -*) ;;
    *) src="$arg" ;;
  esac
done
base=$(basename "$src" .tex)
: > "$out/$base.pdf"
exit ` + strconv.Itoa(exitCode) + `
`
	path := filepath.Join(t.TempDir(), "stub-renderer")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestApp(t *testing.T, profile domain.Profile) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(profile, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	walker := fs.NewWalker()
	tracer := telemetry.NewNoOpTracer()
	disp := dispatcher.NewDispatcher(latex.NewRenderer(log), log, tracer)

	return app.New(loader, fs.NewMirror(walker, log), fs.NewScanner(walker),
		disp, report.NewStore(), log, tracer)
}

func writeSource(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("\\documentclass{standalone}\n"), 0o644))
}

func TestRun_IncrementalBuild(t *testing.T) {
	profile := domain.DefaultProfile()
	profile.RendererCmd = []string{stubRenderer(t, 0)}

	srcRoot := t.TempDir()
	outRoot := t.TempDir()

	// a.tex is new, b.tex already has a fresher artifact.
	writeSource(t, filepath.Join(srcRoot, "fig", "a.tex"))
	writeSource(t, filepath.Join(srcRoot, "fig", "b.tex"))
	staleTime := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(srcRoot, "fig", "b.tex"), staleTime, staleTime))
	require.NoError(t, os.MkdirAll(filepath.Join(outRoot, "fig"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outRoot, "fig", "b.pdf"), []byte("pdf"), 0o644))
	bStat, err := os.Stat(filepath.Join(outRoot, "fig", "b.pdf"))
	require.NoError(t, err)

	reportPath := filepath.Join(t.TempDir(), "report.json")
	a := newTestApp(t, profile)

	err = a.Run(t.Context(), srcRoot, outRoot, app.RunOptions{ReportPath: reportPath})
	require.NoError(t, err)

	// a.pdf was rendered, b.pdf was left alone.
	assert.FileExists(t, filepath.Join(outRoot, "fig", "a.pdf"))
	after, err := os.Stat(filepath.Join(outRoot, "fig", "b.pdf"))
	require.NoError(t, err)
	assert.True(t, after.ModTime().Equal(bStat.ModTime()))

	persisted, err := report.NewStore().Get(reportPath)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 1, persisted.Succeeded)
	assert.Zero(t, persisted.Failed)
}

func TestRun_FreshTreeSkipsRenderer(t *testing.T) {
	profile := domain.DefaultProfile()
	// A renderer that cannot exist proves nothing was probed or run.
	profile.RendererCmd = []string{"/nonexistent/renderer"}

	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	writeSource(t, filepath.Join(srcRoot, "fig", "a.tex"))
	staleTime := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(srcRoot, "fig", "a.tex"), staleTime, staleTime))
	require.NoError(t, os.MkdirAll(filepath.Join(outRoot, "fig"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outRoot, "fig", "a.pdf"), []byte("pdf"), 0o644))

	a := newTestApp(t, profile)
	require.NoError(t, a.Run(t.Context(), srcRoot, outRoot, app.RunOptions{}))
}

func TestRun_FreshTreeStillWritesReport(t *testing.T) {
	profile := domain.DefaultProfile()
	profile.RendererCmd = []string{"/nonexistent/renderer"}

	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	writeSource(t, filepath.Join(srcRoot, "fig", "a.tex"))
	staleTime := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(srcRoot, "fig", "a.tex"), staleTime, staleTime))
	require.NoError(t, os.MkdirAll(filepath.Join(outRoot, "fig"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outRoot, "fig", "a.pdf"), []byte("pdf"), 0o644))

	reportPath := filepath.Join(t.TempDir(), "report.json")
	a := newTestApp(t, profile)

	require.NoError(t, a.Run(t.Context(), srcRoot, outRoot, app.RunOptions{ReportPath: reportPath}))

	persisted, err := report.NewStore().Get(reportPath)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Empty(t, persisted.Results)
	assert.Zero(t, persisted.Succeeded)
	assert.Zero(t, persisted.Failed)
}

func TestRun_FailedJobsExitPolicy(t *testing.T) {
	profile := domain.DefaultProfile()
	profile.RendererCmd = []string{stubRenderer(t, 1)}

	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	writeSource(t, filepath.Join(srcRoot, "a.tex"))

	a := newTestApp(t, profile)

	err := a.Run(t.Context(), srcRoot, outRoot, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrJobsFailed)

	// The legacy behavior is available behind a flag.
	writeSource(t, filepath.Join(srcRoot, "a.tex"))
	require.NoError(t, a.Run(t.Context(), srcRoot, outRoot, app.RunOptions{IgnoreFailures: true}))
}

func TestRun_MissingSourceRoot(t *testing.T) {
	a := newTestApp(t, domain.DefaultProfile())

	err := a.Run(t.Context(), filepath.Join(t.TempDir(), "gone"), t.TempDir(), app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrSourceRootMissing)
}
