// Package manifest locates dependencies inside Cargo manifests.
//
// # Overview
//
// Code generators often need to know what a crate is actually called in the
// current build. The nominal crate name and the locally-used identifier can
// diverge: a manifest author may rename a dependency with `package = "..."`,
// and crate names may contain hyphens that are illegal in identifiers. This
// package answers "what do I call this crate here?" by searching the
// dependency tables of a Cargo.toml with a caller-supplied predicate.
//
// # Basic Usage
//
// [FindCrate] reads the manifest that `CARGO_MANIFEST_DIR` points at and
// returns the matching [Package]:
//
//	pkg, err := manifest.FindCrate(func(name string) bool {
//	    return name == "foo" || name == "foo-core"
//	})
//	if err != nil {
//	    // crate not declared, or the manifest could not be read
//	}
//	ident := pkg.Name // e.g. "foo_core"
//
// For repeated queries, construct a [Manifest] once and call [Manifest.Find]
// or [Manifest.FindVersion]. The two-argument form also hands the declared
// version requirement to the predicate; entries without a version report "*".
//
// # Search Order
//
// Which tables are searched is controlled by the [Dependencies] selector
// (default: [dependencies] then [dev-dependencies]). Within the selected
// tables, entries are visited in the order they appear in the manifest and
// the first match wins. Top-level tables are always exhausted before any
// `[target.'...'.dependencies]` table is considered, so unconditional
// dependencies take precedence over target-specific ones.
//
// # Renames
//
// An entry like
//
//	[dependencies]
//	foo-renamed = { package = "foo", version = "0.1" }
//
// is matched by the upstream name "foo", never by the local alias; the
// returned [Package] reports Name "foo_renamed" and Package "foo".
//
// # Concurrency
//
// A Manifest performs no I/O after construction and never mutates its
// document. Concurrent Find calls are safe as long as no goroutine calls
// [Manifest.SetDependencies] at the same time.
package manifest
