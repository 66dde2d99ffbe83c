package extdesc_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extdesc/pkg/extdesc"
)

func validConfig() extdesc.Config {
	return extdesc.Config{
		Project: extdesc.Coordinates{
			GroupID:    "io.test",
			ArtifactID: "quarkus-widget",
			Version:    "1.0",
		},
		OutputDirectory: filepath.Join("target", "classes"),
	}
}

func TestCoordinates_DeploymentCoordinate(t *testing.T) {
	c := extdesc.Coordinates{GroupID: "io.test", ArtifactID: "quarkus-widget", Version: "1.0"}
	assert.Equal(t, "io.test:quarkus-widget-deployment:1.0", c.DeploymentCoordinate())
	assert.Equal(t, "io.test:quarkus-widget:1.0", c.String())
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	assert.Equal(t, "io.test:quarkus-widget-deployment:1.0", cfg.Deployment)
	assert.Equal(t, filepath.Join("target", "classes", "META-INF", "quarkus-extension.json"), cfg.DescriptorPath)
}

func TestConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Deployment = "org.acme:custom:2.0"
	cfg.DescriptorPath = "src/main/resources/META-INF/quarkus-extension.json"
	cfg.ApplyDefaults()

	assert.Equal(t, "org.acme:custom:2.0", cfg.Deployment)
	assert.Equal(t, "src/main/resources/META-INF/quarkus-extension.json", cfg.DescriptorPath)
}

func TestConfig_LegacyPath(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, filepath.Join("src", "main", "resources", "META-INF"), cfg.LegacyPath())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing everything", func(t *testing.T) {
		cfg := extdesc.Config{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, extdesc.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "group id")
		assert.Contains(t, err.Error(), "artifact id")
		assert.Contains(t, err.Error(), "version")
		assert.Contains(t, err.Error(), "output directory")
	})

	t.Run("legacy strict without sync", func(t *testing.T) {
		cfg := validConfig()
		cfg.LegacyStrict = true
		err := cfg.Validate()
		assert.ErrorIs(t, err, extdesc.ErrInvalidConfig)
	})
}
