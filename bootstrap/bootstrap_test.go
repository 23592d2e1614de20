package bootstrap

import (
	"bytes"
	"os"
	"testing"

	"pkt.systems/md2docx/internal/appconfig"
)

func TestWriteBootstrapWritesFiles(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteBootstrap(dir, false)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	cfg, err := appconfig.Load(paths.ConfigPath)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.ConfigVersion != appconfig.CurrentConfigVersion {
		t.Fatalf("unexpected config version %d", cfg.ConfigVersion)
	}
	data, err := os.ReadFile(paths.ExamplePath)
	if err != nil {
		t.Fatalf("read example: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("# ")) {
		t.Fatalf("expected example to start with a heading")
	}
}

func TestWriteBootstrapRespectsOverwrite(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteBootstrap(dir, false); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, err := WriteBootstrap(dir, false); err == nil {
		t.Fatalf("expected error when files exist")
	}
	if _, err := WriteBootstrap(dir, true); err != nil {
		t.Fatalf("expected overwrite to succeed: %v", err)
	}
}

func TestWriteBootstrapRequiresDir(t *testing.T) {
	if _, err := WriteBootstrap("  ", false); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
