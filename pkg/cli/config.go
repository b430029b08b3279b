package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig is the per-user profile file, ~/.jobdash/config.yaml.
type UserConfig struct {
	CurrentProfile string             `yaml:"current-profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile holds defaults for the dataset and output flags.
type Profile struct {
	RawData       string `yaml:"raw-data,omitempty"`
	ProcessedData string `yaml:"processed-data,omitempty"`
	DatasetConfig string `yaml:"dataset-config,omitempty"`
	Output        string `yaml:"output,omitempty"`
}

// ActiveProfile returns the named profile, or current-profile when name is
// empty. Unknown names yield an empty profile.
func (c *UserConfig) ActiveProfile(name string) Profile {
	if name == "" {
		name = c.CurrentProfile
	}
	return c.Profiles[name]
}

// ConfigPath returns ~/.jobdash/config.yaml, or "" without a home directory.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jobdash", "config.yaml")
}

// LoadUserConfig reads the profile file. A missing file is not an error.
func LoadUserConfig() (*UserConfig, error) {
	cfg := &UserConfig{CurrentProfile: "default"}
	path := ConfigPath()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is under the user's home
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
