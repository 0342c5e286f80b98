package manifest

import (
	"os"
	"path/filepath"

	errs "github.com/matzehuels/cratefind/pkg/errors"
)

// ManifestDirEnv is the environment variable cargo sets to the directory
// containing the manifest of the crate being compiled.
const ManifestDirEnv = "CARGO_MANIFEST_DIR"

// manifestFile is the manifest filename inside ManifestDirEnv.
const manifestFile = "Cargo.toml"

// Path resolves the manifest location from the environment. It fails with
// ErrCodeManifestDirNotFound when CARGO_MANIFEST_DIR is unset.
func Path() (string, error) {
	dir := os.Getenv(ManifestDirEnv)
	if dir == "" {
		return "", errs.New(errs.ErrCodeManifestDirNotFound,
			"`%s` environment variable not found", ManifestDirEnv)
	}
	return filepath.Join(dir, manifestFile), nil
}

// New reads the manifest that the environment points at.
func New() (*Manifest, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return FromPath(path)
}

// FromPath reads and parses the manifest file at path.
func FromPath(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "manifest file not found: %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeReadManifest, err, "reading manifest %s", path)
	}
	return FromBytes(data)
}

// FromBytes parses raw TOML manifest data.
func FromBytes(data []byte) (*Manifest, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeParseManifest, err, "parsing manifest")
	}
	return FromDocument(doc), nil
}

// FindCrate searches the current crate's manifest for a dependency whose
// name satisfies pred. Unlike [Manifest.Find], absence is reported as an
// ErrCodeCrateNotFound error: this entry point is for callers that need
// exactly one crate.
func FindCrate(pred func(name string) bool) (*Package, error) {
	m, err := New()
	if err != nil {
		return nil, err
	}
	pkg, ok := m.Find(pred)
	if !ok {
		return nil, errs.New(errs.ErrCodeCrateNotFound,
			"crate with the specified name not found in dependencies")
	}
	return pkg, nil
}
