package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// EnvConfigPath overrides the default settings location when set.
const EnvConfigPath = "TAVLA_CONFIG"

// Load reads a settings file from disk, validates it, and returns the
// resulting model. A missing file is not an error; first runs get defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, tavlaerrors.NewParseError(path, 0, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, tavlaerrors.NewParseError(path, extractLine(err), err)
	}
	settings.applyDefaults()

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save writes the settings document to path, creating the parent directory
// when needed. The write goes through a temporary file and a rename so an
// interrupted save cannot leave a half-written document behind.
func Save(path string, settings *Settings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return tavlaerrors.NewParseError(path, 0, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// DefaultPath resolves the settings file location: the TAVLA_CONFIG
// environment variable when set, otherwise the per-user config directory.
func DefaultPath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(base, "tavla", "settings.yaml"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
