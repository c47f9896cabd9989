package domain

import "time"

// JobStatus represents the terminal state of a dispatched job.
type JobStatus string

const (
	// StatusSucceeded indicates the renderer exited zero.
	StatusSucceeded JobStatus = "succeeded"
	// StatusFailed indicates the renderer exited non-zero or could not run.
	StatusFailed JobStatus = "failed"
	// StatusSkipped indicates the job was never started because the run was
	// cancelled while it was still queued.
	StatusSkipped JobStatus = "skipped"
)

// JobResult is the outcome of dispatching one job. Results are never
// dropped: the dispatcher records one per worklist entry.
type JobResult struct {
	Source   string        `json:"source"`
	Artifact string        `json:"artifact"`
	Status   JobStatus     `json:"status"`
	ExitCode int           `json:"exit_code"`
	Error    string        `json:"error,omitempty"`
	Digest   string        `json:"invocation_digest,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report aggregates the results of one dispatch run. It is the only state
// that survives a run besides the artifacts themselves, and only when the
// caller asks for it to be persisted.
type Report struct {
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped,omitempty"`
	Results   []JobResult   `json:"results"`
}

// Tally recomputes the per-status counters from Results.
func (r *Report) Tally() {
	r.Succeeded, r.Failed, r.Skipped = 0, 0, 0
	for _, res := range r.Results {
		switch res.Status {
		case StatusSucceeded:
			r.Succeeded++
		case StatusFailed:
			r.Failed++
		case StatusSkipped:
			r.Skipped++
		}
	}
}
