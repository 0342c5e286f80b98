package cli

import (
	"github.com/spf13/cobra"
)

// rootPackageCommand creates the root command, which prints the manifest's
// own [package] name and version.
func (c *CLI) rootPackageCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "root",
		Short: "Show the manifest's own package name and version",
		Long: `Show the name and version the manifest declares for its own package.

Fails when the [package] section or its name/version fields are missing.

Examples:
  cratefind root                        # Read $CARGO_MANIFEST_DIR/Cargo.toml
  cratefind root -m path/to/Cargo.toml  # Explicit manifest location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			pkg, err := m.RootPackage()
			if err != nil {
				return err
			}
			printPackage(cmd.OutOrStdout(), pkg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "",
		"path to Cargo.toml (default: $CARGO_MANIFEST_DIR/Cargo.toml)")

	return cmd
}
