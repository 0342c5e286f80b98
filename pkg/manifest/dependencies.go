package manifest

import (
	"strings"

	errs "github.com/matzehuels/cratefind/pkg/errors"
)

// Dependencies selects which dependency tables a search considers.
//
// Each selector resolves to a fixed, ordered list of manifest table names.
// When the same key appears in more than one of those tables, the earlier
// table wins.
type Dependencies int

const (
	// Default searches [dependencies] and [dev-dependencies].
	Default Dependencies = iota

	// Release searches [dependencies] only.
	Release

	// Dev searches [dev-dependencies] only.
	Dev

	// Build searches [build-dependencies] only.
	Build

	// All searches [dependencies], [dev-dependencies] and
	// [build-dependencies].
	All
)

// Tables returns the manifest table names for the selector, in probe order.
func (d Dependencies) Tables() []string {
	switch d {
	case Release:
		return []string{"dependencies"}
	case Dev:
		return []string{"dev-dependencies"}
	case Build:
		return []string{"build-dependencies"}
	case All:
		return []string{"dependencies", "dev-dependencies", "build-dependencies"}
	default:
		return []string{"dependencies", "dev-dependencies"}
	}
}

// String returns the selector name as accepted by ParseDependencies.
func (d Dependencies) String() string {
	switch d {
	case Release:
		return "release"
	case Dev:
		return "dev"
	case Build:
		return "build"
	case All:
		return "all"
	default:
		return "default"
	}
}

// ParseDependencies maps a selector name to its Dependencies value.
// Accepted names are "default", "release", "dev", "build" and "all";
// the empty string means Default. Matching is case-insensitive.
func ParseDependencies(s string) (Dependencies, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return Default, nil
	case "release":
		return Release, nil
	case "dev":
		return Dev, nil
	case "build":
		return Build, nil
	case "all":
		return All, nil
	}
	return Default, errs.New(errs.ErrCodeInvalidInput,
		"unknown dependency selector %q (expected default, release, dev, build or all)", s)
}
