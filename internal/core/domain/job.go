// Package domain holds the core types of the build runner.
package domain

// Unit is one source file selected by the profile's extension filter.
// It uses InternedString because relative directories repeat across many
// units in large figure trees.
type Unit struct {
	// SourcePath is the absolute path to the source file.
	SourcePath InternedString
	// RelDir is the unit's directory relative to the source root.
	RelDir InternedString
	// Base is the file name without any directory component.
	Base InternedString
}

// Job pairs a Unit with its resolved output locations. A Job is immutable
// once constructed; the scanner builds it and the dispatcher consumes it.
type Job struct {
	Unit Unit
	// OutputDir is the mirrored directory under the output root that the
	// renderer writes into. It exists before the job is dispatched.
	OutputDir InternedString
	// ArtifactPath is the expected rendered output file inside OutputDir,
	// the unit's base name with the artifact extension swapped in.
	ArtifactPath InternedString
}

// Worklist is the ordered set of jobs selected for recompilation in one run.
// Order follows filesystem traversal order; no other ordering is guaranteed.
type Worklist []Job

// Invocation is the fully resolved renderer process invocation for one job:
// structured argv (never a shell string) plus the extra environment entries
// appended to the inherited environment.
type Invocation struct {
	Argv []string
	Env  []string
	// Digest identifies the invocation (argv and extra env) so identical
	// re-runs correlate across reports.
	Digest string
}
