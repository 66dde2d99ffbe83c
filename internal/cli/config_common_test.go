package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extdesc/internal/config"
	"github.com/vvka-141/extdesc/pkg/extdesc"
)

func TestLoadProjectConfig_NotFoundIsNil(t *testing.T) {
	cfg, err := loadProjectConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestApplyEnvironment(t *testing.T) {
	clearCoordinateEnv(t)
	t.Setenv(EnvGroupID, "io.env")
	t.Setenv(EnvDescription, "From env")

	cfg := extdesc.Config{Project: extdesc.Coordinates{GroupID: "io.file", ArtifactID: "file-ext"}}
	applyEnvironment(&cfg)

	assert.Equal(t, "io.env", cfg.Project.GroupID)
	assert.Equal(t, "file-ext", cfg.Project.ArtifactID, "unset variables keep the file value")
	assert.Equal(t, "From env", cfg.Project.Description)
}

func TestBuildGenerateConfig_Layers(t *testing.T) {
	clearCoordinateEnv(t)
	t.Setenv(EnvArtifactID, "env-ext")
	dir := createTestProject(t, map[string]string{
		config.ConfigFileName: `project:
  group-id: io.file
  artifact-id: file-ext
  version: "1.0"
build:
  legacy-sync: true
`,
	})
	cmd, _ := newGenerateTestCmd(t, "--group-id", "io.flag", "--legacy-sync=false")

	cfg, err := buildGenerateConfig(cmd, dir, true)
	require.NoError(t, err)

	assert.Equal(t, "io.flag", cfg.Project.GroupID)
	assert.Equal(t, "env-ext", cfg.Project.ArtifactID)
	assert.Equal(t, "1.0", cfg.Project.Version)
	assert.False(t, cfg.LegacySync, "explicit flag overrides the file")
	assert.Equal(t, filepath.Join(dir, "target", "classes"), cfg.OutputDirectory)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "", cfg.Deployment, "defaults are left to the generator")
}

func TestBuildGenerateConfig_UnsetBoolFlagKeepsFile(t *testing.T) {
	clearCoordinateEnv(t)
	dir := createTestProject(t, map[string]string{
		config.ConfigFileName: "build:\n  legacy-sync: true\n",
	})
	cmd, _ := newGenerateTestCmd(t)

	cfg, err := buildGenerateConfig(cmd, dir, false)
	require.NoError(t, err)
	assert.True(t, cfg.LegacySync)
}
