package cli

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/extdesc/internal/descriptor"
	"github.com/vvka-141/extdesc/internal/files/filesystem"
	"github.com/vvka-141/extdesc/internal/logging"
	"github.com/vvka-141/extdesc/internal/services"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <descriptor>",
	Short: "Print a descriptor migrated to the current schema",
	Long: `Read a descriptor and print it migrated to the current schema.
No file is written and no defaults are applied.

Legacy keys are moved:
  groupId    -> group-id
  artifactId -> artifact-id
  labels     -> metadata.keywords
  guide      -> metadata.guide
  shortName  -> metadata.short-name

Examples:
  # Pretty-printed JSON
  extdesc migrate src/main/resources/META-INF/quarkus-extension.json

  # YAML
  extdesc migrate quarkus-extension.json --yaml

  # Single-line JSON
  extdesc migrate quarkus-extension.json --compact`,
	Args: RequireDescriptorPath,
	RunE: runMigrate,
}

var (
	migrateYAML    bool
	migrateCompact bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateYAML, "yaml", false, "Print YAML instead of JSON")
	migrateCmd.Flags().BoolVar(&migrateCompact, "compact", false, "Print JSON on a single line")
	migrateCmd.MarkFlagsMutuallyExclusive("yaml", "compact")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)
	format := descriptor.DefaultFormat()
	gen := services.NewGenerator(filesystem.NewOSFileSystem(), logger, format, nil)

	doc, err := gen.LoadAndMigrate(args[0])
	if err != nil {
		return err
	}

	out, err := renderMigrated(doc, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func renderMigrated(doc *descriptor.Document, format descriptor.Format) ([]byte, error) {
	if migrateYAML {
		return format.MarshalYAML(doc)
	}

	pretty, err := format.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if !migrateCompact {
		return append(pretty, '\n'), nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, pretty); err != nil {
		return nil, fmt.Errorf("failed to compact descriptor: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
