package config

// DefaultFilename is the profile file figc looks for when no explicit
// config path is given. The file is optional.
const DefaultFilename = "figc.yaml"

// Figfile represents the structure of the figc.yaml profile file.
type Figfile struct {
	Version  string      `yaml:"version"`
	Renderer RendererDTO `yaml:"renderer"`
	Jobs     int         `yaml:"jobs"`
	Ignore   []string    `yaml:"ignore"`
}

// RendererDTO describes the external renderer in the profile file.
type RendererDTO struct {
	Cmd           []string `yaml:"cmd"`
	SourceExt     string   `yaml:"sourceExt"`
	ArtifactExt   string   `yaml:"artifactExt"`
	SearchPathVar string   `yaml:"searchPathVar"`
}
