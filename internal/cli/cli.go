// Package cli implements the cratefind command-line interface.
//
// The CLI is a thin inspection surface over [pkg/manifest]: it searches a
// Cargo.toml for dependencies, follows `package = "..."` renames, and prints
// the identifier-safe name a code generator would use. Commands:
//
//   - find: search the dependency tables for a crate by upstream name
//   - root: show the manifest's own package name and version
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log.
//
// [pkg/manifest]: github.com/matzehuels/cratefind/pkg/manifest
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cratefind/pkg/buildinfo"
	"github.com/matzehuels/cratefind/pkg/manifest"
)

// appName is the application name used for display.
const appName = "cratefind"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Cratefind looks up dependency names in Cargo manifests",
		Long:          `Cratefind resolves what a crate is actually called in the current build: it searches a Cargo.toml for a dependency, follows package renames, and prints the identifier-safe name that code generators should emit.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.findCommand())
	root.AddCommand(c.rootPackageCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadManifest opens the manifest at path, falling back to the location
// CARGO_MANIFEST_DIR points at when path is empty.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.FromPath(path)
	}
	return manifest.New()
}
