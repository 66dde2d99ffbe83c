package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/extdesc/internal/descriptor"
	"github.com/vvka-141/extdesc/internal/files/filesystem"
	"github.com/vvka-141/extdesc/internal/logging"
	"github.com/vvka-141/extdesc/internal/services"
	"github.com/vvka-141/extdesc/internal/tui"
)

var generateCmd = &cobra.Command{
	Use:   "generate [project_path]",
	Short: "Generate the extension descriptor and properties record",
	Long: `Generate META-INF/quarkus-extension.properties and META-INF/quarkus-extension.json
under the output directory.

project_path is the directory holding extdesc.yaml and .env (default: current directory).

Steps:
1. Write the properties record naming the deployment artifact
2. Read the existing descriptor, if any, and migrate legacy keys
   (groupId, artifactId, labels, guide, shortName)
3. Optionally copy the migrated descriptor to src/main/resources/META-INF (--legacy-sync)
4. Fill in group-id, artifact-id, version and name when missing
5. Write the descriptor as pretty-printed JSON

Examples:
  # Use extdesc.yaml in the current directory
  extdesc generate

  # Supply the coordinates on the command line
  extdesc generate --group-id io.quarkus --artifact-id quarkus-resteasy --version 1.0.0 \
    --output target/classes

  # Preview the descriptor without writing files
  extdesc generate ./my-extension --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

type generateFlagValues struct {
	output       string
	groupID      string
	artifactID   string
	version      string
	name         string
	description  string
	deployment   string
	descriptor   string
	legacySync   bool
	legacyStrict bool
	dryRun       bool
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&generateFlags.output, "output", "o", "", "Output directory for compiled classes (default: <project_path>/target/classes)")
	flags.StringVarP(&generateFlags.groupID, "group-id", "g", "", "Project group id")
	flags.StringVarP(&generateFlags.artifactID, "artifact-id", "a", "", "Project artifact id")
	flags.StringVar(&generateFlags.version, "version", "", "Project version")
	flags.StringVar(&generateFlags.name, "name", "", "Extension display name (default: derived from the artifact id)")
	flags.StringVar(&generateFlags.description, "description", "", "Extension description; replaces an existing description only")
	flags.StringVar(&generateFlags.deployment, "deployment", "", "Deployment artifact coordinate (default: <group>:<artifact>-deployment:<version>)")
	flags.StringVar(&generateFlags.descriptor, "descriptor", "", "Existing descriptor to read (default: <output>/META-INF/quarkus-extension.json)")
	flags.BoolVar(&generateFlags.legacySync, "legacy-sync", false, "Also write JSON and YAML copies to src/main/resources/META-INF when it exists")
	flags.BoolVar(&generateFlags.legacyStrict, "legacy-strict", false, "Fail when the legacy copy cannot be written (requires --legacy-sync)")
	flags.BoolVar(&generateFlags.dryRun, "dry-run", false, "Print the descriptor to stdout without writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}

	cfg, err := buildGenerateConfig(cmd, projectDir, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	gen := services.NewGenerator(filesystem.NewOSFileSystem(), logger, descriptor.DefaultFormat(), nil)

	if verbose {
		logger.Verbose("Generating descriptor for %s", cfg.Project)
	}

	res, err := gen.Generate(cfg)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n%s\n", res.PropertiesPath, res.Properties)
		fmt.Fprintf(out, "# %s\n%s\n", res.DescriptorPath, res.DescriptorJSON)
		return nil
	}

	for _, path := range res.Written {
		logger.Info("%s %s", tui.Check(os.Stderr), path)
	}
	return nil
}
