package packagemeta

import (
	"fmt"
	"iter"

	"github.com/lunapress/packagemeta/internal/installed"
	"github.com/sirupsen/logrus"
)

// Index is the package manager runtime as seen by the factory.
// *composer.Runtime implements it.
type Index interface {
	// Lookup returns the live record for name.
	Lookup(name string) (installed.Record, bool)
	// InstallPath resolves the absolute install directory of name.
	InstallPath(name string) (string, bool)
	// ManifestPath returns the install manifest read by bulk discovery.
	ManifestPath() string
}

// Factory builds Metadata for installed packages.
//
// CreateAll reads the manifest file while Create consults the live index.
// The two sources are not reconciled: a package registered with the runtime
// after the manifest was written is visible to Create only.
type Factory struct {
	index    Index
	registry Registry
	log      logrus.FieldLogger
}

// Option configures a Factory at construction.
type Option func(*factoryOptions)

type factoryOptions struct {
	builders map[Type]Builder
	log      logrus.FieldLogger
}

// WithBuilder registers b for discriminator t, replacing any built-in builder.
func WithBuilder(t Type, b Builder) Option {
	return func(o *factoryOptions) {
		o.builders[t] = b
	}
}

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *factoryOptions) {
		o.log = log
	}
}

// NewFactory returns a factory over idx with the built-in builders plus any
// registered through options.
func NewFactory(idx Index, opts ...Option) *Factory {
	f := &Factory{index: idx}

	o := factoryOptions{
		builders: map[Type]Builder{
			TypeService: f.buildService,
		},
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	f.registry = newRegistry(o.builders)
	f.log = o.log
	return f
}

// Registry returns the factory's type registry.
func (f *Factory) Registry() Registry { return f.registry }

// CreateAll reads the install manifest and returns a sequence of metadata
// for every package with a registered type. The manifest is read once, here;
// the sequence builds metadata on demand and can be ranged over only once.
// A missing manifest yields an empty sequence; a malformed one is an error.
func (f *Factory) CreateAll() (iter.Seq[Metadata], error) {
	pkgs, err := installed.Read(f.index.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("reading installed packages: %w", err)
	}

	consumed := false
	return func(yield func(Metadata) bool) {
		if consumed {
			return
		}
		consumed = true

		for name, rec := range pkgs.All() {
			meta := f.build(name, rec)
			if meta == nil {
				continue
			}
			if !yield(meta) {
				return
			}
		}
	}, nil
}

// Create builds metadata for one package from the live index. It returns nil
// when the package is unknown or does not produce metadata.
func (f *Factory) Create(name string) Metadata {
	rec, ok := f.index.Lookup(name)
	if !ok {
		f.log.WithField("package", name).Debug("package not in live index")
		return nil
	}
	return f.build(name, rec)
}

func (f *Factory) build(name string, rec installed.Record) Metadata {
	if rec.Type == "" {
		f.log.WithField("package", name).Debug("skipping package without type")
		return nil
	}

	builder, ok := f.registry.Lookup(Type(rec.Type))
	if !ok {
		f.log.WithFields(logrus.Fields{"package": name, "type": rec.Type}).Debug("no builder for package type")
		return nil
	}

	return builder(name, rec)
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Metadata]) []Metadata {
	var out []Metadata
	for m := range seq {
		out = append(out, m)
	}
	return out
}
