package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cratefind/pkg/manifest"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleIdent for the identifier-safe crate name.
	styleIdent = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Output
// =============================================================================

// printPackage prints a package descriptor, one field per line.
func printPackage(w io.Writer, pkg *manifest.Package) {
	printKeyValue(w, "name", styleIdent.Render(pkg.Name))
	printKeyValue(w, "version", styleValue.Render(pkg.Version))
	if !pkg.IsOriginal() {
		printKeyValue(w, "key", styleValue.Render(pkg.Key))
		printKeyValue(w, "renames", styleValue.Render(pkg.Package))
	}
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := styleDim.Width(8)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+value)
}
