// Package pkg provides the core libraries for cratefind.
//
// # Overview
//
// Cratefind answers one question for code generators: what is a given crate
// actually called in the current build? The manifest's local key and the
// published crate name can diverge through `package = "..."` renames, and
// crate names may contain hyphens that are illegal in identifiers. The pkg
// directory is organized into three areas:
//
//  1. [manifest] - The query engine: manifest document model, dependency
//     table selectors, predicate search, rename resolution and identifier
//     normalization
//  2. [errors] - Structured error codes shared by the library and CLI
//  3. [buildinfo] - Build-time version information injected via ldflags
//
// # Quick Start
//
// Search the current crate's manifest for a dependency:
//
//	import "github.com/matzehuels/cratefind/pkg/manifest"
//
//	pkg, err := manifest.FindCrate(func(name string) bool {
//	    return name == "foo" || name == "foo-core"
//	})
//	if err != nil {
//	    // not declared, or the manifest could not be read
//	}
//	ident := pkg.Name // "foo" or "foo_core"
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...      # All tests
//	go test -run Example   # Examples only
//
// [manifest]: https://pkg.go.dev/github.com/matzehuels/cratefind/pkg/manifest
// [errors]: https://pkg.go.dev/github.com/matzehuels/cratefind/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cratefind/pkg/buildinfo
package pkg
