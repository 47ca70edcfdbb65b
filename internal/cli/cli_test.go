package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lunapress/packagemeta/internal/config"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const cliManifest = `{"packages": [
	{"name": "lunapress/mailer", "version": "1.4.0", "type": "service", "install-path": "../lunapress/mailer",
	 "extra": {"lunapress": {"config": {"di": "config/di.php"}}}},
	{"name": "psr/container", "version": "2.0.2", "type": "library", "install-path": "../psr/container"}
]}`

// setupVendor writes a vendor directory with the mailer service installed.
func setupVendor(t *testing.T, manifest string) string {
	t.Helper()
	vendor := filepath.Join(t.TempDir(), "vendor")
	diDir := filepath.Join(vendor, "lunapress", "mailer", "config")
	if err := os.MkdirAll(diDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(diDir, "di.php"), []byte("<?php return [];\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(vendor, "composer"), 0755); err != nil {
		t.Fatal(err)
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(vendor, "composer", "installed.json"), []byte(manifest), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return vendor
}

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	_ = viper.BindPFlag(config.KeyVendorDir, rootCmd.PersistentFlags().Lookup("vendor-dir"))

	listTypeFilter = ""
	listOutput = string(formatTable)
	showOutput = string(formatTable)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList_JSON(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "list", "--vendor-dir", vendor, "-o", "json")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	var entries []packageEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("parsing output %q: %v", out, err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "lunapress/mailer" || e.Type != "service" || e.Version != "1.4.0" {
		t.Errorf("entry = %+v", e)
	}
	if !strings.HasSuffix(e.DIConfig, filepath.Join("lunapress", "mailer", "config", "di.php")) {
		t.Errorf("DIConfig = %q, want path ending in lunapress/mailer/config/di.php", e.DIConfig)
	}
}

func TestList_YAML(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "list", "--vendor-dir", vendor, "-o", "yaml")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	var entries []packageEntry
	if err := yaml.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("parsing output %q: %v", out, err)
	}
	if len(entries) != 1 || entries[0].Name != "lunapress/mailer" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestList_Table(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "list", "--vendor-dir", vendor)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "TYPE") || !strings.Contains(out, "lunapress/mailer") {
		t.Errorf("unexpected table output:\n%s", out)
	}
	if strings.Contains(out, "psr/container") {
		t.Errorf("library package should not be listed:\n%s", out)
	}
}

func TestList_NoManifest(t *testing.T) {
	vendor := setupVendor(t, "")

	out, err := runCLI(t, "list", "--vendor-dir", vendor)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "No typed packages installed.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestList_TypeFilter(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "list", "--vendor-dir", vendor, "--type", "plugin")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "--type=plugin") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestList_Malformed(t *testing.T) {
	vendor := setupVendor(t, "{")
	if _, err := runCLI(t, "list", "--vendor-dir", vendor); err == nil {
		t.Fatal("expected error for malformed manifest, got nil")
	}
}

func TestList_BadFormat(t *testing.T) {
	vendor := setupVendor(t, cliManifest)
	if _, err := runCLI(t, "list", "--vendor-dir", vendor, "-o", "xml"); err == nil {
		t.Fatal("expected error for unknown output format, got nil")
	}
}

func TestShow(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "show", "lunapress/mailer", "--vendor-dir", vendor, "-o", "json")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, `"name": "lunapress/mailer"`) {
		t.Errorf("unexpected output: %s", out)
	}

	if _, err := runCLI(t, "show", "psr/container", "--vendor-dir", vendor); err == nil {
		t.Error("expected error for untyped package")
	}
	if _, err := runCLI(t, "show", "lunapress/unknown", "--vendor-dir", vendor); err == nil {
		t.Error("expected error for unknown package")
	}
}

func TestValidate(t *testing.T) {
	vendor := setupVendor(t, cliManifest)
	out, err := runCLI(t, "validate", "--vendor-dir", vendor)
	if err != nil {
		t.Fatalf("validate error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("unexpected output: %q", out)
	}

	bad := filepath.Join(t.TempDir(), "installed.json")
	if err := os.WriteFile(bad, []byte(`{"packages": [{"type": "service"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = runCLI(t, "validate", bad)
	if err == nil {
		t.Fatalf("expected error for invalid manifest, output:\n%s", out)
	}
	if !strings.Contains(out, "/packages/0") {
		t.Errorf("expected issue location in output:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	vendor := setupVendor(t, cliManifest)

	out, err := runCLI(t, "check", "lunapress/mailer", "^1.0", "--vendor-dir", vendor)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "satisfies ^1.0") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := runCLI(t, "check", "lunapress/mailer", "^2.0", "--vendor-dir", vendor); err == nil {
		t.Error("expected error for unsatisfied constraint")
	}
}

func TestVersionShort(t *testing.T) {
	buildVersion = "1.2.3"
	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q, want %q", out, "1.2.3")
	}
}
