// Where: internal/config/global.go
// What: User settings load/save helpers.
// Why: Manage ~/.docroot/config.yaml consistently.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/docroot/internal/envutil"
	"github.com/poruru-code/docroot/internal/meta"
)

// GlobalConfig represents the ~/.docroot/config.yaml user settings.
type GlobalConfig struct {
	Version        int          `yaml:"version"`
	DefaultProfile string       `yaml:"default_profile,omitempty"`
	DefaultFormat  string       `yaml:"default_format,omitempty"`
	HeaderImport   HeaderImport `yaml:"header_import,omitempty"`
}

// HeaderImport stores the command lines used by import-header.
type HeaderImport struct {
	Preprocessor []string `yaml:"preprocessor,omitempty"`
	Parser       []string `yaml:"parser,omitempty"`
	Defines      []string `yaml:"defines,omitempty"`
	LogPath      string   `yaml:"log_path,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:        1,
		DefaultProfile: "project",
		DefaultFormat:  "yaml",
		HeaderImport: HeaderImport{
			Preprocessor: []string{"cpp", "-P"},
			Defines:      []string{"_GHIDRA_"},
		},
	}
}

// GlobalConfigPath returns the path to the settings file.
// Respects the prefixed CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := envutil.GetHostEnv(envutil.SuffixConfigPath); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := envutil.GetHostEnv(envutil.SuffixConfigHome); override != "" {
		return filepath.Join(override, meta.SettingsFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.SettingsFileName), nil
}

// LoadGlobalConfig reads and parses the settings file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault returns defaults when the settings file does
// not exist. Unset fields in an existing file fall back to defaults too.
func LoadGlobalConfigOrDefault(path string) (GlobalConfig, error) {
	defaults := DefaultGlobalConfig()
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return GlobalConfig{}, err
	}
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if strings.TrimSpace(cfg.DefaultProfile) == "" {
		cfg.DefaultProfile = defaults.DefaultProfile
	}
	if strings.TrimSpace(cfg.DefaultFormat) == "" {
		cfg.DefaultFormat = defaults.DefaultFormat
	}
	if len(cfg.HeaderImport.Preprocessor) == 0 {
		cfg.HeaderImport.Preprocessor = defaults.HeaderImport.Preprocessor
	}
	if cfg.HeaderImport.Defines == nil {
		cfg.HeaderImport.Defines = defaults.HeaderImport.Defines
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
