package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/md2docx/internal/appconfig"
)

const (
	configName  = "config.yaml"
	exampleName = "example.md"
	exampleRel  = "files/example.md"
)

// Paths reports where bootstrap wrote its outputs.
type Paths struct {
	ConfigPath  string
	ExamplePath string
}

// ExampleMarkdown returns the sample document written by WriteBootstrap.
func ExampleMarkdown() ([]byte, error) {
	return readEmbeddedFile(exampleRel)
}

// WriteBootstrap writes a default config and a sample markdown document into
// outputDir. Existing files are an error unless overwrite is set.
func WriteBootstrap(outputDir string, overwrite bool) (Paths, error) {
	if strings.TrimSpace(outputDir) == "" {
		return Paths{}, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Paths{}, err
	}
	configPath, err := appconfig.WriteDefault(filepath.Join(outputDir, configName), overwrite)
	if err != nil {
		return Paths{}, err
	}
	example, err := ExampleMarkdown()
	if err != nil {
		return Paths{}, err
	}
	examplePath := filepath.Join(outputDir, exampleName)
	if err := writeFile(examplePath, example, overwrite); err != nil {
		return Paths{}, err
	}
	return Paths{ConfigPath: configPath, ExamplePath: examplePath}, nil
}

func writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
