package composer

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version returns the pretty version recorded for name.
func (r *Runtime) Version(name string) (string, bool) {
	rec, ok := r.index.Get(name)
	if !ok || rec.Version == "" {
		return "", false
	}
	return rec.Version, true
}

// Satisfies reports whether the installed version of name matches the
// semver constraint (e.g., "^1.2", ">=2.0 <3.0").
func (r *Runtime) Satisfies(name, constraint string) (bool, error) {
	version, ok := r.Version(name)
	if !ok {
		return false, fmt.Errorf("%s: %w", name, ErrNotInstalled)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q of %s: %w", version, name, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
