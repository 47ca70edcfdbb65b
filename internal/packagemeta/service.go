package packagemeta

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/lunapress/packagemeta/internal/installed"
)

// diConfigKeys locates the DI config path in a record's extra metadata.
var diConfigKeys = []string{"lunapress", "config", "di"}

// leadingDotSlash matches a single leading "./" or any run of leading slashes.
var leadingDotSlash = regexp.MustCompile(`^\.?/+`)

// buildService is the builder for TypeService. It returns nil when the
// package has no resolvable install directory.
func (f *Factory) buildService(name string, rec installed.Record) Metadata {
	baseDir, ok := f.index.InstallPath(name)
	if !ok {
		f.log.WithField("package", name).Debug("service package has no install path")
		return nil
	}

	var diPath string
	if rel, ok := rec.LookupString(diConfigKeys...); ok {
		diPath = resolveConfigFile(baseDir, rel)
		if diPath == "" {
			f.log.WithField("package", name).WithField("di", rel).Debug("DI config file not found")
		}
	}

	return NewServiceMeta(name, diPath)
}

// resolveConfigFile joins a package-relative path to baseDir and returns it
// only if it names an existing regular file.
func resolveConfigFile(baseDir, rel string) string {
	rel = NormalizeRelative(rel)
	if rel == "" {
		return ""
	}
	path := filepath.Join(baseDir, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return path
}

// NormalizeRelative strips a leading "./" or leading slashes, so "./x/y.php",
// "/x/y.php" and "x/y.php" all name the same package-relative file.
func NormalizeRelative(rel string) string {
	return leadingDotSlash.ReplaceAllString(rel, "")
}
