package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRootMissing is returned when the source root does not exist.
	ErrSourceRootMissing = zerr.New("source root does not exist")

	// ErrSourceRootEmpty is returned when the source root contains no entries.
	ErrSourceRootEmpty = zerr.New("source root is empty")

	// ErrRendererNotFound is returned when the renderer executable cannot be
	// located before dispatch starts.
	ErrRendererNotFound = zerr.New("renderer executable not found")

	// ErrInvalidConcurrency is returned when the dispatcher is asked to run
	// with a concurrency limit below one.
	ErrInvalidConcurrency = zerr.New("concurrency limit must be at least 1")

	// ErrJobsFailed is returned after a completed run in which at least one
	// job failed. It marks the run for a non-zero process exit without
	// having aborted sibling jobs.
	ErrJobsFailed = zerr.New("one or more jobs failed")
)
