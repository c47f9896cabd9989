// Package app implements the application layer for figc.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/figc/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// RunOptions carry the per-invocation settings from the CLI into a run.
type RunOptions struct {
	// ConfigPath is the profile file path; empty means the default lookup.
	ConfigPath string
	// Jobs overrides the profile's concurrency limit when positive.
	Jobs int
	// Timeout bounds each renderer invocation. Zero disables the bound.
	Timeout time.Duration
	// IgnoreFailures makes a run with failed jobs exit zero anyway.
	IgnoreFailures bool
	// ReportPath, when set, is where the run report is persisted as JSON.
	ReportPath string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	mirror       ports.Mirrorer
	scanner      ports.Scanner
	dispatcher   *dispatcher.Dispatcher
	reports      ports.ReportStore
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	mirror ports.Mirrorer,
	scanner ports.Scanner,
	disp *dispatcher.Dispatcher,
	reports ports.ReportStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		mirror:       mirror,
		scanner:      scanner,
		dispatcher:   disp,
		reports:      reports,
		logger:       logger,
		tracer:       tracer,
	}
}

// Run executes one incremental build: mirror the directory tree, scan for
// stale units, dispatch the worklist, and optionally persist the report.
func (a *App) Run(ctx context.Context, sourceRoot, outputRoot string, opts RunOptions) error {
	profile, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = profile.Jobs
	}

	sourceRoot, err = filepath.Abs(sourceRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve source root")
	}
	outputRoot, err = filepath.Abs(outputRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve output root")
	}

	mirrorVertex := a.tracer.Record("mirror " + sourceRoot)
	err = a.mirror.Mirror(sourceRoot, outputRoot, profile.Ignores)
	mirrorVertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to mirror source tree")
	}

	scanVertex := a.tracer.Record("scan " + sourceRoot)
	worklist, err := a.scanner.Scan(sourceRoot, outputRoot, profile)
	scanVertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to scan for stale units")
	}

	for _, job := range worklist {
		a.logger.Info("stale: " + job.Unit.SourcePath.String())
	}

	if len(worklist) == 0 {
		a.logger.Info("no units need recompilation")
	}

	// An empty worklist still flows through the dispatcher, which returns
	// an empty report without probing the renderer, so a requested report
	// file records the run either way.
	report, err := a.dispatcher.Dispatch(ctx, worklist, dispatcher.Options{
		Concurrency: jobs,
		Timeout:     opts.Timeout,
		SourceRoot:  sourceRoot,
		Profile:     profile,
	})
	if err != nil {
		return zerr.Wrap(err, "dispatch failed")
	}

	if len(worklist) > 0 {
		a.logger.Info(fmt.Sprintf("compiled %d unit(s) in %s: %d succeeded, %d failed, %d skipped",
			len(report.Results), report.Elapsed.Round(time.Millisecond),
			report.Succeeded, report.Failed, report.Skipped))
	}

	if opts.ReportPath != "" {
		if err := a.reports.Put(opts.ReportPath, report); err != nil {
			return zerr.Wrap(err, "failed to persist report")
		}
	}

	if report.Failed > 0 && !opts.IgnoreFailures {
		return errors.Join(domain.ErrJobsFailed,
			zerr.With(zerr.New("run completed with failures"), "failed", report.Failed))
	}

	return nil
}
