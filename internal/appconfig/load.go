package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configInvalidCode = "CONFIG_INVALID"

// Load reads configuration from the provided path. If path is empty, uses
// DefaultConfigPath. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("document.font_name", cfg.Document.FontName)
	v.SetDefault("document.font_size", cfg.Document.FontSize)
	v.SetDefault("document.heading_sizes", cfg.Document.HeadingSizes)
	v.SetDefault("document.front_matter", cfg.Document.FrontMatter)
	v.SetDefault("document.author", cfg.Document.Author)
	v.SetDefault("center.max_line", cfg.Center.MaxLine)
	v.SetDefault("center.markers", cfg.Center.Markers)
	v.SetDefault("output.dir", cfg.Output.Dir)

	configLoaded := false
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	} else {
		configLoaded = true
	}

	if configLoaded {
		if !v.IsSet("config_version") {
			return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
		}
		if v.GetInt("config_version") != CurrentConfigVersion {
			return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentConfigVersion)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Output.Dir = expandEnv(cfg.Output.Dir)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that viper cannot enforce.
func Validate(cfg Config) error {
	err := validation.ValidateStruct(&cfg.Document,
		validation.Field(&cfg.Document.FontName, validation.Required),
		validation.Field(&cfg.Document.FontSize, validation.Required, validation.Min(1.0)),
		validation.Field(&cfg.Document.HeadingSizes, validation.Required, validation.Length(3, 3), validation.Each(validation.Min(1.0))),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid document config: %v", err)).
			WithTextCode(configInvalidCode)
	}
	err = validation.ValidateStruct(&cfg.Center,
		validation.Field(&cfg.Center.MaxLine, validation.Min(0)),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid center config: %v", err)).
			WithTextCode(configInvalidCode)
	}
	return nil
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := lookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	if key == "HOME" {
		if home, err := os.UserHomeDir(); err == nil {
			return home, true
		}
	}
	return "", false
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
