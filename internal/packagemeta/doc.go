// Package packagemeta builds typed metadata for installed packages that
// declare a known package type. A Factory reads raw records from the install
// manifest (bulk discovery) or from the runtime's live index (single lookup)
// and dispatches each one through a Registry of per-type builders. Records
// without a type, with an unregistered type, or whose builder produces
// nothing are skipped without error.
package packagemeta
