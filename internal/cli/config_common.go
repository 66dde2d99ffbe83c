package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/extdesc/internal/config"
	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// Environment variables overriding the project coordinates of extdesc.yaml.
const (
	EnvGroupID     = "EXTDESC_GROUP_ID"
	EnvArtifactID  = "EXTDESC_ARTIFACT_ID"
	EnvVersion     = "EXTDESC_VERSION"
	EnvName        = "EXTDESC_NAME"
	EnvDescription = "EXTDESC_DESCRIPTION"
)

// defaultOutputDirectory is used when no layer names an output directory.
var defaultOutputDirectory = filepath.Join("target", "classes")

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if extdesc.yaml does not exist (not an error).
func loadProjectConfig(projectDir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(projectDir, ".env"))

	projectCfg, err := config.Load(projectDir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, extdesc.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// applyEnvironment overrides coordinates with non-empty EXTDESC_* variables.
func applyEnvironment(cfg *extdesc.Config) {
	for env, target := range map[string]*string{
		EnvGroupID:     &cfg.Project.GroupID,
		EnvArtifactID:  &cfg.Project.ArtifactID,
		EnvVersion:     &cfg.Project.Version,
		EnvName:        &cfg.Project.Name,
		EnvDescription: &cfg.Project.Description,
	} {
		if v := os.Getenv(env); v != "" {
			*target = v
		}
	}
}

// applyGenerateFlags overrides cfg with the flags given on the command line.
// String flags apply when non-empty, boolean flags when explicitly set.
func applyGenerateFlags(cmd *cobra.Command, cfg *extdesc.Config) {
	for _, f := range []struct {
		value  string
		target *string
	}{
		{generateFlags.groupID, &cfg.Project.GroupID},
		{generateFlags.artifactID, &cfg.Project.ArtifactID},
		{generateFlags.version, &cfg.Project.Version},
		{generateFlags.name, &cfg.Project.Name},
		{generateFlags.description, &cfg.Project.Description},
		{generateFlags.output, &cfg.OutputDirectory},
		{generateFlags.deployment, &cfg.Deployment},
		{generateFlags.descriptor, &cfg.DescriptorPath},
	} {
		if f.value != "" {
			*f.target = f.value
		}
	}

	if cmd.Flags().Changed("legacy-sync") {
		cfg.LegacySync = generateFlags.legacySync
	}
	if cmd.Flags().Changed("legacy-strict") {
		cfg.LegacyStrict = generateFlags.legacyStrict
	}
	cfg.DryRun = generateFlags.dryRun
}

// buildGenerateConfig layers extdesc.yaml, the environment and the flags into one Config.
// Defaults are applied by the generator.
func buildGenerateConfig(cmd *cobra.Command, projectDir string, verbose bool) (extdesc.Config, error) {
	projectCfg, err := loadProjectConfig(projectDir)
	if err != nil {
		return extdesc.Config{}, err
	}

	var cfg extdesc.Config
	if projectCfg != nil {
		cfg = projectCfg.ToConfig()
	}
	applyEnvironment(&cfg)
	applyGenerateFlags(cmd, &cfg)

	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = filepath.Join(projectDir, defaultOutputDirectory)
	}
	cfg.Verbose = verbose
	return cfg, nil
}
