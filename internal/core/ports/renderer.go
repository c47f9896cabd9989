// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/figc/internal/core/domain"
)

// Renderer defines the interface for invoking the external document renderer.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Probe verifies the renderer executable named by the profile can be
	// located. It is called once before dispatch so a missing renderer
	// surfaces as a fatal error rather than as per-job failures.
	Probe(profile domain.Profile) error

	// Plan builds the process invocation for one job. The source root is
	// threaded explicitly; Plan must not read it from ambient state.
	Plan(job domain.Job, sourceRoot string, profile domain.Profile) domain.Invocation

	// Render runs a planned invocation to completion and reports the job
	// outcome. A non-zero renderer exit is recorded in the result, never
	// returned as an error; stderr is streamed to the given writer and
	// stdout is discarded.
	Render(ctx context.Context, job domain.Job, inv domain.Invocation, stderr io.Writer) domain.JobResult
}
