package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/md2docx/internal/docx"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int            `mapstructure:"config_version" yaml:"config_version"`
	Document      DocumentConfig `mapstructure:"document" yaml:"document"`
	Center        CenterConfig   `mapstructure:"center" yaml:"center"`
	Output        OutputConfig   `mapstructure:"output" yaml:"output"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// DocumentConfig controls fonts and sizes of the generated document.
type DocumentConfig struct {
	FontName string  `mapstructure:"font_name" yaml:"font_name"`
	FontSize float64 `mapstructure:"font_size" yaml:"font_size"`
	// HeadingSizes holds the point sizes of heading levels 1 to 3.
	HeadingSizes []float64 `mapstructure:"heading_sizes" yaml:"heading_sizes"`
	FrontMatter  bool      `mapstructure:"front_matter" yaml:"front_matter"`
	Author       string    `mapstructure:"author" yaml:"author"`
}

// CenterConfig selects the title-block lines that are centered: paragraphs
// within the first MaxLine lines that contain one of Markers.
type CenterConfig struct {
	MaxLine int      `mapstructure:"max_line" yaml:"max_line"`
	Markers []string `mapstructure:"markers" yaml:"markers"`
}

// OutputConfig controls where converted documents are written when no
// explicit output path is given.
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Document: DocumentConfig{
			FontName:     docx.DefaultFont.Name,
			FontSize:     docx.DefaultFont.Size,
			HeadingSizes: []float64{16, 14, 12},
			FrontMatter:  false,
			Author:       "",
		},
		Center: CenterConfig{
			MaxLine: 10,
			Markers: []string{},
		},
		Output: OutputConfig{
			Dir: "",
		},
	}
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".md2docx", "config.yaml"), nil
}
