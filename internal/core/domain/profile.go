package domain

// Default profile values, matching a standalone TikZ figure tree rendered
// with LuaLaTeX.
const (
	DefaultSourceExt     = ".tex"
	DefaultArtifactExt   = ".pdf"
	DefaultSearchPathVar = "TEXINPUTS"
	DefaultJobs          = 32
)

// DefaultRendererCmd is the argv prefix of the external renderer.
func DefaultRendererCmd() []string {
	return []string{"lualatex"}
}

// Profile describes how source units are discovered and rendered. It is
// loaded from an optional figc.yaml and overridden by CLI flags.
type Profile struct {
	// RendererCmd is the renderer argv prefix; figc appends its own flags
	// and the source path.
	RendererCmd []string
	// SourceExt selects units during the scan (with leading dot).
	SourceExt string
	// ArtifactExt replaces SourceExt to form the artifact path.
	ArtifactExt string
	// SearchPathVar is the environment variable pointing the renderer's
	// input search path at the source root.
	SearchPathVar string
	// Ignores are directory or file name patterns excluded from mirroring
	// and scanning.
	Ignores []string
	// Jobs is the concurrency limit used when the CLI does not override it.
	Jobs int
}

// DefaultProfile returns the built-in profile used when no figc.yaml exists.
func DefaultProfile() Profile {
	return Profile{
		RendererCmd:   DefaultRendererCmd(),
		SourceExt:     DefaultSourceExt,
		ArtifactExt:   DefaultArtifactExt,
		SearchPathVar: DefaultSearchPathVar,
		Jobs:          DefaultJobs,
	}
}
