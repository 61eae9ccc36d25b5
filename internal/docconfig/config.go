// Where: internal/docconfig/config.go
// What: Documentation build configuration model and builder.
// Why: Build the option set once, as explicit fields, for every renderer.
package docconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrUnknownProfile is returned for profile names with no builder.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrLayout is returned when a required directory is missing under the root.
	ErrLayout = errors.New("required directory not found")
)

// Config is the option set handed to the documentation generator.
type Config struct {
	Profile   string `yaml:"profile" json:"profile"`
	ConfigDir string `yaml:"config_dir" json:"config_dir"`
	RootDir   string `yaml:"root_dir" json:"root_dir"`
	SrcDir    string `yaml:"src_dir,omitempty" json:"src_dir,omitempty"`
	DocDir    string `yaml:"doc_dir" json:"doc_dir"`
	BuildDir  string `yaml:"build_dir,omitempty" json:"build_dir,omitempty"`

	DoxygenDir string `yaml:"doxygen_dir,omitempty" json:"doxygen_dir,omitempty"`
	SphinxDir  string `yaml:"sphinx_dir,omitempty" json:"sphinx_dir,omitempty"`

	Project   string `yaml:"project" json:"project"`
	Copyright string `yaml:"copyright" json:"copyright"`
	Author    string `yaml:"author" json:"author"`

	Extensions         []string `yaml:"extensions" json:"extensions"`
	DisabledExtensions []string `yaml:"disabled_extensions,omitempty" json:"disabled_extensions,omitempty"`
	TemplatesPath      []string `yaml:"templates_path" json:"templates_path"`
	ExcludePatterns    []string `yaml:"exclude_patterns" json:"exclude_patterns"`

	HTMLTheme      string   `yaml:"html_theme" json:"html_theme"`
	HTMLStaticPath []string `yaml:"html_static_path" json:"html_static_path"`
	HTMLExtraPath  []string `yaml:"html_extra_path" json:"html_extra_path"`

	MystHeadingAnchors int `yaml:"myst_heading_anchors" json:"myst_heading_anchors"`

	BreatheProjects       map[string]string `yaml:"breathe_projects,omitempty" json:"breathe_projects,omitempty"`
	BreatheDefaultProject string            `yaml:"breathe_default_project,omitempty" json:"breathe_default_project,omitempty"`
}

// Options controls a Build call.
type Options struct {
	// Profile selects the builder; empty means DefaultProfile.
	Profile string
	// ConfigDir is the directory the search starts from.
	ConfigDir string
	// OverridesPath points to an overrides file. Empty means
	// <root>/docroot.yml when present.
	OverridesPath string
}

// Build resolves directories for the selected profile and applies overrides.
func Build(opts Options) (Config, error) {
	name := strings.TrimSpace(opts.Profile)
	if name == "" {
		name = DefaultProfile
	}
	p, ok := profiles[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
	}

	configDir := strings.TrimSpace(opts.ConfigDir)
	if configDir == "" {
		configDir = "."
	}
	absConfigDir, err := filepath.Abs(configDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := p.build(absConfigDir)
	if err != nil {
		return Config{}, fmt.Errorf("%s profile: %w", name, err)
	}
	cfg.Profile = name
	cfg.ConfigDir = absConfigDir

	overridesPath := strings.TrimSpace(opts.OverridesPath)
	explicit := overridesPath != ""
	if !explicit {
		overridesPath = filepath.Join(cfg.RootDir, OverridesFileName)
	}
	overrides, found, err := LoadOverrides(overridesPath)
	if err != nil {
		return Config{}, err
	}
	if explicit && !found {
		return Config{}, fmt.Errorf("overrides file not found: %s", overridesPath)
	}
	if found {
		overrides.apply(&cfg)
	}
	cfg.finalize()
	return cfg, nil
}

// ProfileNames lists the registered profiles in stable order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// finalize wires options that depend on the final extension list.
func (c *Config) finalize() {
	if slices.Contains(c.Extensions, "breathe") && c.DoxygenDir != "" {
		c.BreatheProjects = map[string]string{"api": c.DoxygenDir}
		c.BreatheDefaultProject = "api"
	} else {
		c.BreatheProjects = nil
		c.BreatheDefaultProject = ""
	}
}

func requireDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrLayout, path)
	}
	return path, nil
}

func optionalDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return ""
}

func appendUnique(list []string, values ...string) []string {
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || slices.Contains(list, value) {
			continue
		}
		list = append(list, value)
	}
	return list
}
