package installed

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one entry of the install manifest's packages list.
type Record struct {
	Name              string `json:"name"`
	Version           string `json:"version,omitempty"`
	VersionNormalized string `json:"version_normalized,omitempty"`
	Type              string `json:"type,omitempty"`
	InstallPath       string `json:"install-path,omitempty"` // relative to the manifest's directory
	Extra             Extra  `json:"extra,omitempty"`
}

// Extra is the free-form metadata block a package author declares.
type Extra map[string]any

// UnmarshalJSON accepts an object, or an empty array which PHP-based
// package managers emit for an empty extra block.
func (e *Extra) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []any
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		if len(list) > 0 {
			return fmt.Errorf("extra must be an object, got array of %d items", len(list))
		}
		*e = nil
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*e = m
	return nil
}

// Lookup walks Extra along the given keys and returns the value found there.
func (r Record) Lookup(keys ...string) (any, bool) {
	var cur any = map[string]any(r.Extra)
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// LookupString is Lookup restricted to non-empty string values.
func (r Record) LookupString(keys ...string) (string, bool) {
	v, ok := r.Lookup(keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// document is the top-level shape of installed.json.
type document struct {
	Packages []Record `json:"packages"`
}
