package extdesc

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Coordinates are the project facts supplied by the surrounding build.
// They are the source of truth for defaulting and are never modified.
type Coordinates struct {
	// GroupID is the project group identifier
	GroupID string

	// ArtifactID is the project artifact identifier
	ArtifactID string

	// Version is the project version
	Version string

	// Name is the declared project name; empty means not declared
	Name string

	// Description is the declared project description; empty means not declared
	Description string
}

// DeploymentCoordinate returns the default coordinate of the companion
// deployment artifact: group:artifact-deployment:version.
func (c Coordinates) DeploymentCoordinate() string {
	return c.GroupID + ":" + c.ArtifactID + DeploymentSuffix + ":" + c.Version
}

// String returns group:artifact:version.
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Config contains all parameters needed for a descriptor generation run.
type Config struct {
	// Project holds the project coordinates used for defaulting
	Project Coordinates

	// OutputDirectory is the directory for compiled classes; generated files go
	// under OutputDirectory/META-INF
	OutputDirectory string

	// Deployment is the deployment artifact coordinate written to the properties record.
	// Defaults to Project.DeploymentCoordinate().
	Deployment string

	// DescriptorPath is the existing descriptor to read, if present.
	// Defaults to OutputDirectory/META-INF/quarkus-extension.json.
	DescriptorPath string

	// LegacySync enables the legacy side-output into the resources directory
	LegacySync bool

	// LegacyStrict makes legacy side-output failures abort the run
	LegacyStrict bool

	// DryRun computes the descriptor without writing any file
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// ApplyDefaults fills Deployment and DescriptorPath when they are empty.
func (c *Config) ApplyDefaults() {
	if c.Deployment == "" {
		c.Deployment = c.Project.DeploymentCoordinate()
	}
	if c.DescriptorPath == "" && c.OutputDirectory != "" {
		c.DescriptorPath = filepath.Join(c.MetaInfPath(), DescriptorFileName)
	}
}

// MetaInfPath returns OutputDirectory/META-INF.
func (c *Config) MetaInfPath() string {
	return filepath.Join(c.OutputDirectory, MetaInfDir)
}

// LegacyPath returns the legacy resources directory resolved against the output directory.
func (c *Config) LegacyPath() string {
	return filepath.Join(c.OutputDirectory, filepath.FromSlash(LegacySourceDir))
}

// Validate checks if the Config has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *Config) Validate() error {
	var errs []error

	if c.Project.GroupID == "" {
		errs = append(errs, fmt.Errorf("project group id is required: %w", ErrInvalidConfig))
	}

	if c.Project.ArtifactID == "" {
		errs = append(errs, fmt.Errorf("project artifact id is required: %w", ErrInvalidConfig))
	}

	if c.Project.Version == "" {
		errs = append(errs, fmt.Errorf("project version is required: %w", ErrInvalidConfig))
	}

	if c.OutputDirectory == "" {
		errs = append(errs, fmt.Errorf("output directory is required: %w", ErrInvalidConfig))
	}

	if c.LegacyStrict && !c.LegacySync {
		errs = append(errs, fmt.Errorf("legacy-strict requires legacy-sync to be enabled: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
