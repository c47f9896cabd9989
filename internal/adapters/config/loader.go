// Package config provides the profile loader for figc.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the profile from the given path. Fields absent from the file
// fall back to the built-in defaults. A missing file at the default location
// is not an error; a missing file at an explicitly chosen path is.
func (l *Loader) Load(path string) (domain.Profile, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFilename {
			return domain.DefaultProfile(), nil
		}
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to read profile file"), "path", path)
	}

	var figfile Figfile
	if err := yaml.Unmarshal(data, &figfile); err != nil {
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to parse profile file"), "path", path)
	}

	profile, err := merge(figfile)
	if err != nil {
		return domain.Profile{}, zerr.With(err, "path", path)
	}
	return profile, nil
}

// merge overlays the file's fields onto the default profile and validates
// the result.
func merge(figfile Figfile) (domain.Profile, error) {
	profile := domain.DefaultProfile()

	if len(figfile.Renderer.Cmd) > 0 {
		profile.RendererCmd = figfile.Renderer.Cmd
	}
	if figfile.Renderer.SourceExt != "" {
		profile.SourceExt = figfile.Renderer.SourceExt
	}
	if figfile.Renderer.ArtifactExt != "" {
		profile.ArtifactExt = figfile.Renderer.ArtifactExt
	}
	if figfile.Renderer.SearchPathVar != "" {
		profile.SearchPathVar = figfile.Renderer.SearchPathVar
	}
	if figfile.Jobs != 0 {
		profile.Jobs = figfile.Jobs
	}
	profile.Ignores = figfile.Ignore

	if profile.Jobs < 1 {
		return domain.Profile{}, zerr.With(zerr.New("jobs must be at least 1"), "jobs", profile.Jobs)
	}
	if !strings.HasPrefix(profile.SourceExt, ".") {
		return domain.Profile{}, zerr.With(zerr.New("sourceExt must start with a dot"), "sourceExt", profile.SourceExt)
	}
	if !strings.HasPrefix(profile.ArtifactExt, ".") {
		return domain.Profile{}, zerr.With(zerr.New("artifactExt must start with a dot"), "artifactExt", profile.ArtifactExt)
	}
	if profile.SourceExt == profile.ArtifactExt {
		return domain.Profile{}, zerr.New("sourceExt and artifactExt must differ")
	}

	return profile, nil
}
