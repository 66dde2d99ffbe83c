package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vvka-141/extdesc/pkg/extdesc"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ProjectSection struct {
	GroupID     string `yaml:"group-id"`
	ArtifactID  string `yaml:"artifact-id"`
	Version     string `yaml:"version"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type BuildSection struct {
	OutputDirectory string `yaml:"output-directory"`
	Deployment      string `yaml:"deployment,omitempty"`
	Descriptor      string `yaml:"descriptor,omitempty"`
	LegacySync      bool   `yaml:"legacy-sync"`
	LegacyStrict    bool   `yaml:"legacy-strict,omitempty"`
}

type ProjectConfig struct {
	Project ProjectSection `yaml:"project"`
	Build   BuildSection   `yaml:"build"`
}

const ConfigFileName = "extdesc.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.resolvePaths(sourcePath)
	return &cfg, nil
}

// resolvePaths makes relative build paths relative to the directory holding the file.
func (c *ProjectConfig) resolvePaths(baseDir string) {
	if c.Build.OutputDirectory != "" && !filepath.IsAbs(c.Build.OutputDirectory) {
		c.Build.OutputDirectory = filepath.Join(baseDir, c.Build.OutputDirectory)
	}
	if c.Build.Descriptor != "" && !filepath.IsAbs(c.Build.Descriptor) {
		c.Build.Descriptor = filepath.Join(baseDir, c.Build.Descriptor)
	}
}

// ToConfig converts the file contents into a generation config.
// Defaults are not applied here so later layers can still override fields.
func (c *ProjectConfig) ToConfig() extdesc.Config {
	return extdesc.Config{
		Project: extdesc.Coordinates{
			GroupID:     c.Project.GroupID,
			ArtifactID:  c.Project.ArtifactID,
			Version:     c.Project.Version,
			Name:        c.Project.Name,
			Description: c.Project.Description,
		},
		OutputDirectory: c.Build.OutputDirectory,
		Deployment:      c.Build.Deployment,
		DescriptorPath:  c.Build.Descriptor,
		LegacySync:      c.Build.LegacySync,
		LegacyStrict:    c.Build.LegacyStrict,
	}
}
