package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/figc/internal/adapters/config"
	"go.trai.ch/figc/internal/core/domain"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MissingDefaultFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	loader := config.NewLoader()
	profile, err := loader.Load("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)
}

func TestLoader_MissingExplicitFileIsAnError(t *testing.T) {
	loader := config.NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))

	assert.Error(t, err)
}

func TestLoader_FullProfile(t *testing.T) {
	path := writeProfile(t, `version: "1"
renderer:
  cmd: ["xelatex"]
  sourceExt: ".tikz"
  artifactExt: ".svg"
  searchPathVar: "XEINPUTS"
jobs: 8
ignore: ["build", ".cache"]
`)

	loader := config.NewLoader()
	profile, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"xelatex"}, profile.RendererCmd)
	assert.Equal(t, ".tikz", profile.SourceExt)
	assert.Equal(t, ".svg", profile.ArtifactExt)
	assert.Equal(t, "XEINPUTS", profile.SearchPathVar)
	assert.Equal(t, 8, profile.Jobs)
	assert.Equal(t, []string{"build", ".cache"}, profile.Ignores)
}

func TestLoader_PartialProfileKeepsDefaults(t *testing.T) {
	path := writeProfile(t, `version: "1"
jobs: 4
`)

	loader := config.NewLoader()
	profile, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRendererCmd(), profile.RendererCmd)
	assert.Equal(t, domain.DefaultSourceExt, profile.SourceExt)
	assert.Equal(t, domain.DefaultArtifactExt, profile.ArtifactExt)
	assert.Equal(t, 4, profile.Jobs)
}

func TestLoader_InvalidYAML(t *testing.T) {
	path := writeProfile(t, "renderer: [this is not a mapping")

	loader := config.NewLoader()
	_, err := loader.Load(path)

	assert.Error(t, err)
}

func TestLoader_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative jobs", content: "jobs: -2\n"},
		{name: "sourceExt without dot", content: "renderer:\n  sourceExt: tex\n"},
		{name: "artifactExt without dot", content: "renderer:\n  artifactExt: pdf\n"},
		{name: "identical extensions", content: "renderer:\n  sourceExt: .tex\n  artifactExt: .tex\n"},
	}

	loader := config.NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(writeProfile(t, tt.content))
			assert.Error(t, err)
		})
	}
}
