// Package dispatcher drains a worklist through the renderer with bounded
// parallelism. Dispatch is fail-soft: a failing job is recorded and its
// siblings keep running.
package dispatcher

import (
	"context"
	"time"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options control a single dispatch run.
type Options struct {
	// Concurrency is the maximum number of renderer processes alive at once.
	Concurrency int
	// Timeout bounds each individual job. Zero means no per-job timeout.
	Timeout time.Duration
	// SourceRoot is the absolute source tree root, threaded into every
	// planned invocation.
	SourceRoot string
	// Profile supplies the renderer command and extension mapping.
	Profile domain.Profile
}

// Dispatcher runs worklists against the renderer.
type Dispatcher struct {
	renderer ports.Renderer
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(renderer ports.Renderer, logger ports.Logger, tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		renderer: renderer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Dispatch runs every job in the worklist and returns a report with one
// result per job. The returned error covers setup problems only (bad
// options, renderer not found); job failures land in the report and never
// abort the run.
func (d *Dispatcher) Dispatch(ctx context.Context, worklist domain.Worklist, opts Options) (domain.Report, error) {
	report := domain.Report{StartedAt: time.Now()}

	if opts.Concurrency < 1 {
		return report, zerr.With(domain.ErrInvalidConcurrency, "concurrency", opts.Concurrency)
	}

	// An empty worklist short-circuits before the renderer is probed, so a
	// fully fresh tree builds even when the renderer is not installed.
	if len(worklist) == 0 {
		return report, nil
	}

	if err := d.renderer.Probe(opts.Profile); err != nil {
		return report, err
	}

	invocations := make([]domain.Invocation, len(worklist))
	for i, job := range worklist {
		invocations[i] = d.renderer.Plan(job, opts.SourceRoot, opts.Profile)
	}

	manifest, err := writeManifest(worklist, invocations)
	if err != nil {
		return report, err
	}
	defer removeManifest(manifest, d.logger)

	report.Results = make([]domain.JobResult, len(worklist))

	group := &errgroup.Group{}
	group.SetLimit(opts.Concurrency)

	for i, job := range worklist {
		group.Go(func() error {
			report.Results[i] = d.run(ctx, job, invocations[i], opts.Timeout)
			return nil
		})
	}

	// Workers never return errors; Wait is a pure barrier here.
	_ = group.Wait()

	report.Elapsed = time.Since(report.StartedAt)
	report.Tally()

	return report, nil
}

// run executes a single job inside its own tracer vertex. Jobs still queued
// when the run context is cancelled are marked skipped without starting a
// renderer process.
func (d *Dispatcher) run(ctx context.Context, job domain.Job, inv domain.Invocation, timeout time.Duration) domain.JobResult {
	source := job.Unit.SourcePath.String()

	if ctx.Err() != nil {
		return domain.JobResult{
			Source:   source,
			Artifact: job.ArtifactPath.String(),
			Status:   domain.StatusSkipped,
			Digest:   inv.Digest,
			Error:    ctx.Err().Error(),
		}
	}

	jobCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	vertex := d.tracer.Record("render " + source)
	result := d.renderer.Render(jobCtx, job, inv, vertex.Stderr())

	switch result.Status {
	case domain.StatusSucceeded:
		vertex.Complete(nil)
		d.logger.Info("rendered: " + source)
	case domain.StatusFailed, domain.StatusSkipped:
		// The renderer already logged the failure with its exit detail.
		vertex.Complete(zerr.With(zerr.New(result.Error), "source", source))
	}

	return result
}
