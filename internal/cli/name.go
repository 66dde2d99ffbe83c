package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/extdesc/internal/descriptor"
)

var nameCmd = &cobra.Command{
	Use:   "name <artifact_id>",
	Short: "Print the display name derived from an artifact id",
	Long: `Print the name used when no extension name is declared.

The quarkus- prefix is dropped, dashes become spaces and each word is capitalized.

Examples:
  extdesc name quarkus-resteasy-reactive   # Resteasy Reactive
  extdesc name smallrye-health             # Smallrye Health`,
	Args: RequireArtifactID,
	RunE: runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), descriptor.DeriveName(args[0]))
	return err
}
