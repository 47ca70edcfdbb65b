package packagemeta

// Type is the package type discriminator declared in a record's "type" field.
type Type string

// TypeService marks packages that contribute dependency-injection wiring.
const TypeService Type = "service"

// Metadata is the typed descriptor built for a recognized package.
type Metadata interface {
	Name() string
	Type() Type
}

// ServiceMeta describes a service package and its optional DI config file.
type ServiceMeta struct {
	name         string
	diConfigPath string
}

// NewServiceMeta returns service metadata. diConfigPath is empty when the
// package ships no DI config file.
func NewServiceMeta(name, diConfigPath string) *ServiceMeta {
	return &ServiceMeta{name: name, diConfigPath: diConfigPath}
}

// Name returns the package name.
func (m *ServiceMeta) Name() string { return m.name }

// Type returns TypeService.
func (m *ServiceMeta) Type() Type { return TypeService }

// DIConfigPath returns the absolute path of the DI config file, if any.
func (m *ServiceMeta) DIConfigPath() (string, bool) {
	return m.diConfigPath, m.diConfigPath != ""
}
