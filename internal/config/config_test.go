package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load unexpected err: %v", err)
	}
	if !cfg.SkipComments {
		t.Fatalf("SkipComments=false, want true by default")
	}
	if cfg.Verbose || cfg.Color || cfg.Progress || cfg.LogFile != "" {
		t.Fatalf("unexpected non-default values: %+v", cfg)
	}
}

func TestLoad_YAMLAndJSONCAgree(t *testing.T) {
	yamlPath := writeFile(t, "proxyconv.yaml", `
verbose: true
color: true
log_file: run.log
skip_comments: false
progress: true
`)
	jsoncPath := writeFile(t, "proxyconv.jsonc", `{
	// same settings, JSON flavour
	"verbose": true,
	"color": true,
	"log_file": "run.log",
	"skip_comments": false,
	"progress": true, /* trailing comma allowed */
}`)

	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	fromJSONC, err := Load(jsoncPath)
	if err != nil {
		t.Fatalf("Load jsonc: %v", err)
	}
	if *fromYAML != *fromJSONC {
		t.Fatalf("yaml=%+v, jsonc=%+v, want equal", fromYAML, fromJSONC)
	}
	want := Config{Verbose: true, Color: true, LogFile: "run.log", SkipComments: false, Progress: true}
	if *fromYAML != want {
		t.Fatalf("cfg=%+v, want %+v", *fromYAML, want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "proxyconv.yml", "verbose: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Verbose || !cfg.SkipComments {
		t.Fatalf("cfg=%+v, want verbose with default skip_comments", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := writeFile(t, "bad.json", `{"verbose": }`)
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected error for malformed json")
	}
	badYAML := writeFile(t, "bad.yaml", "verbose: [unclosed\n")
	if _, err := Load(badYAML); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
