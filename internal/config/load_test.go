package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdd.toml")
	content := `
project_root = "/srv/app"
output_document_path = "/srv/app/documentation"
module_version = "1.2.0"
code = "sdd"
credential_path = "/srv/app/.jira.env"
skip_sidecars = true

[warnings]
noise_mode = "reduce"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := InstallConfig{
		ProjectRoot:        "/srv/app",
		OutputDocumentPath: "/srv/app/documentation",
		ModuleVersion:      "1.2.0",
		Code:               "sdd",
		CredentialPath:     "/srv/app/.jira.env",
		SkipSidecars:       true,
		Warnings:           WarningsConfig{NoiseMode: "reduce"},
	}
	if *cfg != want {
		t.Fatalf("unexpected config:\n got %+v\nwant %+v", *cfg, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected missing file error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestParseConfigSyntaxError(t *testing.T) {
	_, err := ParseConfig([]byte("project_root = "), "inline")
	if err == nil || !strings.Contains(err.Error(), "invalid config inline") {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected a position in %v", err)
	}
	if errors.Is(err, ErrConfigValidation) {
		t.Fatalf("syntax errors must not be validation errors")
	}
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("project_root = \"/x\"\nprojct_root = \"/y\"\n"), "inline")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unrecognized config keys: projct_root") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseConfigNamesNestedUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("[warnings]\nnoise = \"reduce\"\n"), "inline")
	if !errors.Is(err, ErrConfigValidation) || !strings.Contains(err.Error(), "warnings.noise") {
		t.Fatalf("expected nested key in error, got %v", err)
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	dir, err := os.MkdirTemp(home, "sdd-config-")
	if err != nil {
		t.Skipf("home directory not writable: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	if err := os.WriteFile(filepath.Join(dir, "sdd.toml"), []byte("code = \"acme\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(filepath.Join("~", filepath.Base(dir), "sdd.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Code != "acme" {
		t.Fatalf("unexpected code: %q", cfg.Code)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	_, err := ParseConfig([]byte("code = \"SDD!\"\n"), "inline")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseConfigAllowsMissingRoot(t *testing.T) {
	cfg, err := ParseConfig([]byte("code = \"sdd\"\n"), "inline")
	if err != nil {
		t.Fatalf("a missing root is reported by the lifecycle, not the loader: %v", err)
	}
	if cfg.HasProjectRoot() {
		t.Fatalf("expected no project root")
	}
}
