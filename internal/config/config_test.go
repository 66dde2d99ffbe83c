package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `project:
  group-id: io.quarkus
  artifact-id: quarkus-resteasy
  version: 1.0.0
  name: RESTEasy
  description: REST endpoints

build:
  output-directory: target/classes
  deployment: io.quarkus:custom-deployment:1.0.0
  descriptor: src/descriptor.json
  legacy-sync: true
  legacy-strict: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "io.quarkus", cfg.Project.GroupID)
	assert.Equal(t, "quarkus-resteasy", cfg.Project.ArtifactID)
	assert.Equal(t, "1.0.0", cfg.Project.Version)
	assert.Equal(t, "RESTEasy", cfg.Project.Name)
	assert.Equal(t, "REST endpoints", cfg.Project.Description)
	assert.Equal(t, filepath.Join(dir, "target", "classes"), cfg.Build.OutputDirectory)
	assert.Equal(t, "io.quarkus:custom-deployment:1.0.0", cfg.Build.Deployment)
	assert.Equal(t, filepath.Join(dir, "src", "descriptor.json"), cfg.Build.Descriptor)
	assert.True(t, cfg.Build.LegacySync)
	assert.True(t, cfg.Build.LegacyStrict)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `project:
  artifact-id: quarkus-widget
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Project.GroupID)
	assert.Equal(t, "quarkus-widget", cfg.Project.ArtifactID)
	assert.Equal(t, "", cfg.Build.OutputDirectory)
	assert.Equal(t, "", cfg.Build.Descriptor)
	assert.False(t, cfg.Build.LegacySync)
}

func TestLoad_AbsolutePathsKept(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "classes")
	content := "build:\n  output-directory: " + filepath.ToSlash(out) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(out), filepath.Clean(cfg.Build.OutputDirectory))
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestToConfig(t *testing.T) {
	pc := &ProjectConfig{
		Project: ProjectSection{
			GroupID:     "io.test",
			ArtifactID:  "quarkus-widget",
			Version:     "1.0",
			Description: "Widgets",
		},
		Build: BuildSection{
			OutputDirectory: "/out",
			LegacySync:      true,
		},
	}

	cfg := pc.ToConfig()

	assert.Equal(t, "io.test", cfg.Project.GroupID)
	assert.Equal(t, "quarkus-widget", cfg.Project.ArtifactID)
	assert.Equal(t, "1.0", cfg.Project.Version)
	assert.Equal(t, "", cfg.Project.Name)
	assert.Equal(t, "Widgets", cfg.Project.Description)
	assert.Equal(t, "/out", cfg.OutputDirectory)
	assert.Equal(t, "", cfg.Deployment, "defaults are applied later")
	assert.Equal(t, "", cfg.DescriptorPath)
	assert.True(t, cfg.LegacySync)
	assert.False(t, cfg.LegacyStrict)
}
