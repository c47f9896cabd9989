// Package latex provides the external renderer adapter. It shells out to a
// LuaLaTeX-compatible renderer once per job using structured argv, never a
// formatted shell string.
package latex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer using os/exec.
type Renderer struct {
	logger ports.Logger
}

// NewRenderer creates a new Renderer.
func NewRenderer(logger ports.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Probe verifies the renderer executable is reachable through PATH. A
// missing renderer is a mechanism failure and must abort the run before
// any job is attempted.
func (r *Renderer) Probe(profile domain.Profile) error {
	if len(profile.RendererCmd) == 0 {
		return zerr.Wrap(domain.ErrRendererNotFound, "profile has no renderer command")
	}

	if _, err := exec.LookPath(profile.RendererCmd[0]); err != nil {
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrRendererNotFound, err), "failed to locate renderer"),
			"renderer", profile.RendererCmd[0],
		)
	}
	return nil
}

// Plan builds the invocation for one job: batch mode, halt on the first
// internal renderer error, write into the job's mirrored output directory,
// and point the renderer's input search path at the source root. The
// trailing list separator keeps the renderer's default search paths active.
func (r *Renderer) Plan(job domain.Job, sourceRoot string, profile domain.Profile) domain.Invocation {
	argv := make([]string, 0, len(profile.RendererCmd)+4)
	argv = append(argv, profile.RendererCmd...)
	argv = append(argv,
		"-interaction=batchmode",
		"-halt-on-error",
		"--output-directory="+job.OutputDir.String(),
		job.Unit.SourcePath.String(),
	)

	env := []string{
		profile.SearchPathVar + "=" + sourceRoot + string(os.PathListSeparator),
	}

	return domain.Invocation{
		Argv:   argv,
		Env:    env,
		Digest: digest(argv, env),
	}
}

// Render runs the invocation to completion. Stdout is discarded; stderr is
// streamed to the caller's writer. A non-zero exit is a per-job failure
// recorded in the result, not an error.
func (r *Renderer) Render(ctx context.Context, job domain.Job, inv domain.Invocation, stderr io.Writer) domain.JobResult {
	start := time.Now()

	//nolint:gosec // argv comes from the profile and the scanned tree
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Env = append(os.Environ(), inv.Env...)
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr

	result := domain.JobResult{
		Source:   job.Unit.SourcePath.String(),
		Artifact: job.ArtifactPath.String(),
		Digest:   inv.Digest,
	}

	err := cmd.Run()
	result.Duration = time.Since(start)

	if err != nil {
		result.Status = domain.StatusFailed
		result.Error = err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Signal or start failure; there is no exit code to report.
			result.ExitCode = -1
		}
		r.logger.Error(zerr.With(zerr.Wrap(err, "render failed"), "source", result.Source))
		return result
	}

	result.Status = domain.StatusSucceeded
	return result
}

// digest hashes argv and the extra environment so identical invocations
// carry a stable identity across runs.
func digest(argv, env []string) string {
	h := xxhash.New()
	for _, a := range argv {
		_, _ = h.WriteString(a)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
	for _, e := range env {
		_, _ = h.WriteString(e)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
