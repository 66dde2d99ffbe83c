package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extdesc",
	Short: "Extension descriptor generator",
	Long: `extdesc writes the extension descriptor for a build.

It reads the descriptor already present in the output directory (if any),
migrates the legacy flat schema to the current one, fills in the project
coordinates that are missing, and writes:

  META-INF/quarkus-extension.properties   deployment artifact coordinate
  META-INF/quarkus-extension.json         extension descriptor

Project values come from extdesc.yaml, then .env and EXTDESC_* environment
variables, then command-line flags, each layer overriding the previous one.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or project coordinates
  20 - Existing descriptor could not be parsed
  21 - File could not be read or written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
