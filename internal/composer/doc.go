// Package composer models the package manager runtime of a host application:
// the vendor directory, its metadata directory (vendor/composer) holding the
// install manifest, and the live in-memory index of installed packages with
// install-path and version queries.
package composer
