package composer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lunapress/packagemeta/internal/installed"
)

// MetadataDirName is the directory under the vendor dir where the package
// manager keeps its runtime metadata and the install manifest.
const MetadataDirName = "composer"

// ErrNotInstalled is returned by version queries for unknown packages.
var ErrNotInstalled = errors.New("package not installed")

// Runtime is the live view of installed packages. The index is a snapshot
// taken at Load time plus anything added through Register; it is not
// refreshed when the manifest changes on disk. A Runtime is not safe for
// concurrent mutation.
type Runtime struct {
	vendorDir string
	index     *installed.Packages
}

// New returns a runtime for vendorDir whose index holds the given records.
func New(vendorDir string, records ...installed.Record) *Runtime {
	return &Runtime{
		vendorDir: vendorDir,
		index:     installed.NewPackages(records),
	}
}

// Load reads the install manifest under vendorDir into a new runtime index.
func Load(vendorDir string) (*Runtime, error) {
	r := New(vendorDir)
	pkgs, err := installed.Read(r.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("loading installed packages: %w", err)
	}
	r.index = pkgs
	return r, nil
}

// VendorDir returns the vendor directory the runtime was created for.
func (r *Runtime) VendorDir() string { return r.vendorDir }

// MetadataDir returns the runtime's metadata directory (vendor/composer).
func (r *Runtime) MetadataDir() string {
	return filepath.Join(r.vendorDir, MetadataDirName)
}

// ManifestPath returns the path of installed.json next to the runtime metadata.
func (r *Runtime) ManifestPath() string {
	return installed.ManifestPath(r.MetadataDir())
}

// Register adds or replaces a record in the live index.
func (r *Runtime) Register(rec installed.Record) {
	r.index.Put(rec)
}

// Lookup returns the live record for name.
func (r *Runtime) Lookup(name string) (installed.Record, bool) {
	return r.index.Get(name)
}

// AllInstalled returns a copy of the live index keyed by package name.
func (r *Runtime) AllInstalled() map[string]installed.Record {
	out := make(map[string]installed.Record, r.index.Len())
	for name, rec := range r.index.All() {
		out[name] = rec
	}
	return out
}

// Names returns the installed package names, sorted.
func (r *Runtime) Names() []string {
	names := r.index.Names()
	sort.Strings(names)
	return names
}

// IsInstalled reports whether name is in the live index.
func (r *Runtime) IsInstalled(name string) bool {
	_, ok := r.index.Get(name)
	return ok
}

// InstallPath resolves the absolute install directory of name. Relative
// install paths are taken from the metadata directory. The second result is
// false when the package is unknown or its directory is missing on disk.
func (r *Runtime) InstallPath(name string) (string, bool) {
	rec, ok := r.index.Get(name)
	if !ok || rec.InstallPath == "" {
		return "", false
	}

	path := rec.InstallPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.MetadataDir(), path)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", false
	}
	return abs, true
}
