package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lunapress/packagemeta/internal/composer"
	"github.com/lunapress/packagemeta/internal/packagemeta"
	"go.yaml.in/yaml/v3"
)

// packageEntry is the printable view of a package's metadata.
type packageEntry struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	DIConfig string `json:"di_config,omitempty" yaml:"di_config,omitempty"`
}

func newPackageEntry(m packagemeta.Metadata, rt *composer.Runtime) packageEntry {
	e := packageEntry{
		Name: m.Name(),
		Type: string(m.Type()),
	}
	if v, ok := rt.Version(m.Name()); ok {
		e.Version = v
	}
	if svc, ok := m.(*packagemeta.ServiceMeta); ok {
		if p, ok := svc.DIConfigPath(); ok {
			e.DIConfig = p
		}
	}
	return e
}

// outputFormat selects how entries are printed.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatTable, formatJSON, formatYAML:
		return outputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

func printEntries(w io.Writer, format outputFormat, entries []packageEntry) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return printTable(w, entries)
	}
}

func printTable(w io.Writer, entries []packageEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tVERSION\tDI CONFIG")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Type, e.Name, dash(e.Version), dash(e.DIConfig))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
