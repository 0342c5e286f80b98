package cli

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/cratefind/pkg/errors"
	"github.com/matzehuels/cratefind/pkg/manifest"
)

// findFlags holds the command-line flags for the find command.
type findFlags struct {
	manifestPath string // path to Cargo.toml (env-resolved if empty)
	tables       string // dependency selector name
}

// findCommand creates the find command.
//
// The command searches the manifest's dependency tables for any of the given
// upstream crate names and prints the descriptor of the first match.
func (c *CLI) findCommand() *cobra.Command {
	flags := findFlags{}

	cmd := &cobra.Command{
		Use:   "find NAME [NAME...]",
		Short: "Find a dependency by its upstream crate name",
		Long: `Find a dependency in the manifest by its upstream crate name.

Renamed dependencies (package = "...") are matched by the upstream name,
and the local alias is what gets reported as the identifier.

Examples:
  cratefind find serde                       # Search $CARGO_MANIFEST_DIR/Cargo.toml
  cratefind find foo foo-core                # First of several candidate names
  cratefind find cc --tables build           # Search [build-dependencies] only
  cratefind find tokio -m path/to/Cargo.toml # Explicit manifest location`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFind(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.manifestPath, "manifest", "m", "",
		"path to Cargo.toml (default: $CARGO_MANIFEST_DIR/Cargo.toml)")
	cmd.Flags().StringVarP(&flags.tables, "tables", "t", "default",
		"dependency tables to search (default|release|dev|build|all)")

	return cmd
}

// runFind executes the search and prints the result.
func (c *CLI) runFind(ctx context.Context, w io.Writer, names []string, flags findFlags) error {
	logger := loggerFromContext(ctx)

	deps, err := manifest.ParseDependencies(flags.tables)
	if err != nil {
		return err
	}

	m, err := loadManifest(flags.manifestPath)
	if err != nil {
		return err
	}
	m.SetDependencies(deps)

	logger.Debugf("searching %v tables for %s", deps.Tables(), strings.Join(names, ", "))

	pkg, ok := m.Find(func(name string) bool {
		return slices.Contains(names, name)
	})
	if !ok {
		return errs.New(errs.ErrCodeCrateNotFound,
			"no crate named %s in the searched tables", strings.Join(names, " or "))
	}

	printPackage(w, pkg)
	return nil
}
