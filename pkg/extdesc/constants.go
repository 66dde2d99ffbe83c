package extdesc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Descriptor generated successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or project coordinates
	ExitParseError   = 20 // Existing descriptor is not a JSON object
	ExitIOError      = 21 // Output directory or file could not be written
)

const (
	// MetaInfDir is the directory under the output directory that receives
	// every generated file.
	MetaInfDir = "META-INF"

	// PropertiesFileName is the properties record naming the deployment artifact.
	PropertiesFileName = "quarkus-extension.properties"

	// DescriptorFileName is the JSON descriptor written next to the properties record.
	DescriptorFileName = "quarkus-extension.json"

	// LegacyYAMLFileName is the YAML copy written by the legacy side-output.
	LegacyYAMLFileName = "quarkus-descriptor.yaml"

	// PropDeploymentArtifact is the properties key holding the deployment coordinate.
	PropDeploymentArtifact = "deployment-artifact"

	// PropertiesHeader is written as the leading comment of the properties record.
	PropertiesHeader = "Generated by extension-descriptor"

	// DeploymentSuffix is appended to the artifact id to form the deployment artifact id.
	DeploymentSuffix = "-deployment"

	// ProductPrefix is stripped from artifact ids before deriving a display name.
	ProductPrefix = "quarkus-"

	// LegacySourceDir is the legacy resources directory, relative to the output directory.
	// For a conventional layout (target/classes) this resolves to src/main/resources/META-INF.
	LegacySourceDir = "../../src/main/resources/META-INF"
)
