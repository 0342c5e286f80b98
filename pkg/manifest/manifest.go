package manifest

import (
	errs "github.com/matzehuels/cratefind/pkg/errors"
)

// wildcardVersion is reported for entries that declare no version.
const wildcardVersion = "*"

// Manifest searches the dependency tables of a parsed manifest document.
//
// The zero value is not usable; construct with [New], [FromPath],
// [FromBytes] or [FromDocument]. Which tables are searched is controlled by
// the [Dependencies] selector, initially [Default].
type Manifest struct {
	doc  *Document
	deps Dependencies
}

// FromDocument constructs a Manifest over an already-parsed document.
func FromDocument(doc *Document) *Manifest {
	return &Manifest{doc: doc, deps: Default}
}

// Document returns the underlying document.
func (m *Manifest) Document() *Document {
	return m.doc
}

// Dependencies returns the active table selector.
func (m *Manifest) Dependencies() Dependencies {
	return m.deps
}

// SetDependencies sets the table selector used by subsequent Find calls.
func (m *Manifest) SetDependencies(deps Dependencies) {
	m.deps = deps
}

// Find searches the selected dependency tables for an entry whose crate name
// satisfies pred and returns its descriptor. It is the version-blind form of
// [Manifest.FindVersion].
func (m *Manifest) Find(pred func(name string) bool) (*Package, bool) {
	return m.FindVersion(func(name, _ string) bool {
		return pred(name)
	})
}

// FindVersion searches the selected dependency tables for an entry whose
// crate name and version requirement satisfy pred.
//
// Tables are probed in selector order and entries within a table in manifest
// order; the first satisfying entry wins. Only after the whole top-level
// pass comes up empty are the tables nested under [target] probed, target by
// target, with the same per-table order. Renamed entries are matched by
// their upstream `package` name, not by the local alias key.
func (m *Manifest) FindVersion(pred func(name, version string) bool) (*Package, bool) {
	for _, table := range m.deps.Tables() {
		if t, ok := m.doc.Table(table); ok {
			if pkg, ok := findDependency(t, pred); ok {
				return pkg, true
			}
		}
	}

	// Unconditional dependencies take precedence over target-specific ones.
	targets, ok := m.doc.Table("target")
	if !ok {
		return nil, false
	}
	for _, target := range targets.Keys() {
		for _, table := range m.deps.Tables() {
			if t, ok := m.doc.Table("target", target, table); ok {
				if pkg, ok := findDependency(t, pred); ok {
					return pkg, true
				}
			}
		}
	}
	return nil, false
}

// RootPackage returns the manifest's own declared name and version from the
// top-level [package] section. The returned descriptor has Key set to the
// declared name and Name to its identifier-safe form.
func (m *Manifest) RootPackage() (*Package, error) {
	pkg, ok := m.doc.Table("package")
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidManifest, "missing [package] section")
	}
	name, ok := pkg.GetString("name")
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidManifest, "[package] section has no string `name` field")
	}
	version, ok := pkg.GetString("version")
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidManifest, "[package] section has no string `version` field")
	}
	return &Package{Key: name, Name: Ident(name), Version: version}, nil
}

// findDependency scans one dependency table in manifest order and returns
// the first entry satisfying pred.
func findDependency(t Table, pred func(name, version string) bool) (*Package, bool) {
	for _, key := range t.Keys() {
		value, _ := t.Get(key)
		version := entryVersion(value)

		if renamed, ok := entryPackage(value); ok {
			// The local key of a renamed dependency is an arbitrary alias,
			// so only the upstream name is consulted. The alias still
			// supplies the identifier.
			if pred(renamed, version) {
				return &Package{Key: key, Name: Ident(key), Package: renamed, Version: version}, true
			}
			continue
		}

		if pred(key, version) {
			return &Package{Key: key, Name: Ident(key), Version: version}, true
		}
	}
	return nil, false
}

// entryVersion extracts the version requirement from a dependency value:
// the value itself for `foo = "0.1"`, the `version` field for table values,
// "*" otherwise.
func entryVersion(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			return s
		}
	}
	return wildcardVersion
}

// entryPackage extracts the `package = "..."` rename source from a
// table-valued dependency entry.
func entryPackage(value any) (string, bool) {
	if t, ok := value.(map[string]any); ok {
		if s, ok := t["package"].(string); ok {
			return s, true
		}
	}
	return "", false
}
