package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireDescriptorPath validates that exactly one descriptor argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDescriptorPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <descriptor>

Usage: %s

Example:
  %s src/main/resources/META-INF/quarkus-extension.json`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireArtifactID validates that exactly one artifact_id argument is provided.
func RequireArtifactID(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <artifact_id>

Usage: %s

Example:
  %s quarkus-resteasy-reactive`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
