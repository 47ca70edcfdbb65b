// Package cli defines the Cobra command tree for the lunapress-meta CLI. Each
// file registers one top-level command (list, show, validate, etc.) with the
// root command. Commands delegate discovery to internal/packagemeta and only
// handle flag parsing and output formatting.
package cli
