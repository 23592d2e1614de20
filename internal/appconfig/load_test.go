package appconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultConfig()
	if cfg.ConfigVersion != want.ConfigVersion || cfg.Document.FontName != want.Document.FontName || cfg.Document.FontSize != want.Document.FontSize {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Document.HeadingSizes, want.Document.HeadingSizes) {
		t.Fatalf("expected default heading sizes, got %v", cfg.Document.HeadingSizes)
	}
	if cfg.Center.MaxLine != 10 || len(cfg.Center.Markers) != 0 {
		t.Fatalf("expected default center config, got %+v", cfg.Center)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
config_version: 1
document:
  font_name: Georgia
  heading_sizes: [20, 16, 13]
center:
  max_line: 5
  markers:
    - Computer Architecture
    - RPN1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Document.FontName != "Georgia" {
		t.Fatalf("expected font override, got %q", cfg.Document.FontName)
	}
	if cfg.Document.FontSize != 11 {
		t.Fatalf("expected default font size, got %v", cfg.Document.FontSize)
	}
	if !reflect.DeepEqual(cfg.Document.HeadingSizes, []float64{20, 16, 13}) {
		t.Fatalf("unexpected heading sizes: %v", cfg.Document.HeadingSizes)
	}
	if cfg.Center.MaxLine != 5 || len(cfg.Center.Markers) != 2 || cfg.Center.Markers[1] != "RPN1" {
		t.Fatalf("unexpected center config: %+v", cfg.Center)
	}
	if cfg.Document.FrontMatter {
		t.Fatalf("expected front matter disabled by default")
	}
}

func TestLoadRejectsUnsupportedConfigVersion(t *testing.T) {
	path := writeConfig(t, `
config_version: 7
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported config_version") {
		t.Fatalf("expected config_version error, got %v", err)
	}
}

func TestLoadRequiresConfigVersion(t *testing.T) {
	path := writeConfig(t, `
document:
  font_name: Georgia
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config_version is required") {
		t.Fatalf("expected config_version error, got %v", err)
	}
}

func TestLoadRejectsBadHeadingSizes(t *testing.T) {
	path := writeConfig(t, `
config_version: 1
document:
  heading_sizes: [16, 14]
`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestValidateRejectsNegativeMaxLine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Center.MaxLine = -1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := Validate(DefaultConfig()); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FOO", "bar")
	value := expandEnv("$FOO/out/$MISSING_MD2DOCX_VAR")
	if !strings.HasPrefix(value, "bar/") {
		t.Fatalf("expected env expansion, got %q", value)
	}
	if !strings.HasSuffix(value, "/$MISSING_MD2DOCX_VAR") {
		t.Fatalf("expected missing vars to remain, got %q", value)
	}
}

func TestWriteDefaultRespectsOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("write default: %v", err)
	}
	if written != path {
		t.Fatalf("expected path %q, got %q", path, written)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config to exist: %v", err)
	}
	if _, err := WriteDefault(path, false); err == nil {
		t.Fatalf("expected error when config exists")
	}
	if _, err := WriteDefault(path, true); err != nil {
		t.Fatalf("expected overwrite to succeed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load written default: %v", err)
	}
	if cfg.Document.FontName != DefaultConfig().Document.FontName {
		t.Fatalf("unexpected round-tripped font %q", cfg.Document.FontName)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
