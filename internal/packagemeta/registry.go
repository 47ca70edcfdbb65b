package packagemeta

import (
	"maps"
	"slices"

	"github.com/lunapress/packagemeta/internal/installed"
)

// Builder turns a raw record into metadata. Returning nil means the record
// yields nothing and is skipped.
type Builder func(name string, rec installed.Record) Metadata

// Registry maps type discriminators to builders. It is fixed once built.
type Registry struct {
	builders map[Type]Builder
}

func newRegistry(builders map[Type]Builder) Registry {
	return Registry{builders: maps.Clone(builders)}
}

// Lookup returns the builder registered for t. Matching is exact.
func (r Registry) Lookup(t Type) (Builder, bool) {
	b, ok := r.builders[t]
	return b, ok && b != nil
}

// Types returns the registered discriminators, sorted.
func (r Registry) Types() []Type {
	return slices.Sorted(maps.Keys(r.builders))
}
