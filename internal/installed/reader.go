package installed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// ManifestFile is the name of the install manifest inside the package
// manager's metadata directory.
const ManifestFile = "installed.json"

// ErrMalformedManifest is returned when the manifest exists but cannot be decoded.
var ErrMalformedManifest = errors.New("malformed install manifest")

// Packages maps package names to records. Iteration follows the order in
// which a name first appeared in the manifest; a later record with the same
// name replaces the earlier one in place.
type Packages struct {
	order  []string
	byName map[string]Record
}

// NewPackages builds a Packages set from records in document order.
func NewPackages(records []Record) *Packages {
	p := &Packages{byName: make(map[string]Record, len(records))}
	for _, r := range records {
		p.Put(r)
	}
	return p
}

// Put adds or replaces the record keyed by r.Name. Records without a name are ignored.
func (p *Packages) Put(r Record) {
	if r.Name == "" {
		return
	}
	if p.byName == nil {
		p.byName = make(map[string]Record)
	}
	if _, ok := p.byName[r.Name]; !ok {
		p.order = append(p.order, r.Name)
	}
	p.byName[r.Name] = r
}

// Len returns the number of distinct package names.
func (p *Packages) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// Get returns the record for name.
func (p *Packages) Get(name string) (Record, bool) {
	if p == nil {
		return Record{}, false
	}
	r, ok := p.byName[name]
	return r, ok
}

// Names returns package names in manifest order.
func (p *Packages) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// All yields name/record pairs in manifest order.
func (p *Packages) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		if p == nil {
			return
		}
		for _, name := range p.order {
			if !yield(name, p.byName[name]) {
				return
			}
		}
	}
}

// ManifestPath returns the install manifest path inside a metadata directory
// (e.g., vendor/composer).
func ManifestPath(metadataDir string) string {
	return filepath.Join(metadataDir, ManifestFile)
}

// Read loads the install manifest at path. A missing manifest is not an
// error: it yields an empty set, as for a host with no dependencies.
func Read(path string) (*Packages, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewPackages(nil), nil
		}
		return nil, fmt.Errorf("checking manifest %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return NewPackages(nil), nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedManifest, path, err)
	}
	return NewPackages(records), nil
}

// decode accepts the current {"packages": [...]} layout and the legacy
// bare-array layout written by older package manager releases.
func decode(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Packages, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
