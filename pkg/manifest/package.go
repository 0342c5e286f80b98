package manifest

import "strings"

// Package describes a dependency found in a manifest.
//
// Returned by [Manifest.Find], [Manifest.FindVersion] and [FindCrate].
// All fields are copies; a Package stays valid after its Manifest is gone.
type Package struct {
	// Key is the dependency key exactly as written in the manifest.
	Key string

	// Name is Key with every hyphen replaced by an underscore, usable as a
	// language-level identifier.
	Name string

	// Package is the original upstream crate name when the dependency is
	// renamed via `package = "..."`. Empty when Key is the original name.
	Package string

	// Version is the declared version requirement, "*" when the entry does
	// not specify one.
	Version string
}

// OriginalName returns the upstream crate name: the rename source when the
// dependency is renamed, the manifest key otherwise.
func (p *Package) OriginalName() string {
	if p.Package != "" {
		return p.Package
	}
	return p.Key
}

// IsOriginal reports whether the manifest key is the upstream crate name.
func (p *Package) IsOriginal() bool {
	return p.Package == ""
}

// Ident converts a crate name to an identifier-safe form by replacing every
// hyphen with an underscore. The conversion is total and idempotent. It does
// not reject names that remain illegal identifiers for other reasons, such
// as a leading digit.
func Ident(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}
