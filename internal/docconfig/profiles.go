// Where: internal/docconfig/profiles.go
// What: The project and index build profiles.
// Why: Keep both build contexts as separate configurations on one resolver.
package docconfig

import (
	"path/filepath"
	"strings"

	"github.com/poruru-code/docroot/internal/resolver"
)

const (
	// ProfileProject anchors on the project-definition file.
	ProfileProject = "project"
	// ProfileIndex anchors on the documentation index file.
	ProfileIndex = "index"
	// DefaultProfile is used when no profile is requested.
	DefaultProfile = ProfileProject

	// OverridesFileName is looked up in the root directory.
	OverridesFileName = "docroot.yml"

	defaultTheme     = "sphinx_rtd_theme"
	defaultCopyright = "No Rights Reserved"
	headingAnchors   = 4
)

var (
	// ProjectMarker matches a .NET project file.
	ProjectMarker = resolver.Glob("*.csproj")
	// IndexMarker matches the documentation index.
	IndexMarker = resolver.File("index.md")
)

type profile struct {
	marker resolver.Marker
	build  func(configDir string) (Config, error)
}

var profiles = map[string]profile{
	ProfileProject: {marker: ProjectMarker, build: buildProject},
	ProfileIndex:   {marker: IndexMarker, build: buildIndex},
}

// MarkerFor returns the marker a profile anchors on.
func MarkerFor(name string) (resolver.Marker, bool) {
	p, ok := profiles[name]
	return p.marker, ok
}

func baseExcludePatterns() []string {
	return []string{
		"_build",
		"Thumbs.db",
		".DS_Store",
		"README.md",
		"**/README.md",
		"Doxyfile",
		"conf.py",
	}
}

func baseConfig() Config {
	return Config{
		Copyright:          defaultCopyright,
		Extensions:         []string{"myst_parser", "sphinx_rtd_theme"},
		DisabledExtensions: []string{"breathe", "sphinx_csharp"},
		ExcludePatterns:    baseExcludePatterns(),
		HTMLTheme:          defaultTheme,
		HTMLStaticPath:     []string{},
		HTMLExtraPath:      []string{},
		MystHeadingAnchors: headingAnchors,
	}
}

// buildProject requires the full src/docs/build layout under the
// directory holding the project file.
func buildProject(configDir string) (Config, error) {
	match, err := resolver.Find(configDir, ProjectMarker)
	if err != nil {
		return Config{}, err
	}
	root := match.Dir

	cfg := baseConfig()
	cfg.RootDir = root
	cfg.Project = strings.TrimSuffix(filepath.Base(match.Entry), filepath.Ext(match.Entry))

	required := []struct {
		target *string
		path   string
	}{
		{&cfg.SrcDir, filepath.Join(root, "src")},
		{&cfg.DocDir, filepath.Join(root, "docs")},
		{&cfg.BuildDir, filepath.Join(root, "build")},
		{&cfg.DoxygenDir, filepath.Join(root, "build", "doxygen")},
		{&cfg.SphinxDir, filepath.Join(root, "build", "sphinx")},
	}
	for _, entry := range required {
		dir, err := requireDir(entry.path)
		if err != nil {
			return Config{}, err
		}
		*entry.target = dir
	}

	cfg.TemplatesPath = []string{filepath.Join(cfg.DocDir, "_templates")}
	if static := optionalDir(filepath.Join(cfg.DocDir, "_static")); static != "" {
		cfg.HTMLStaticPath = append(cfg.HTMLStaticPath, static)
	}
	cfg.HTMLExtraPath = append(cfg.HTMLExtraPath, cfg.DoxygenDir)
	return cfg, nil
}

// buildIndex treats the directory holding the index as the documentation
// source and its parent as the root. Build outputs are optional here.
func buildIndex(configDir string) (Config, error) {
	docDir, err := resolver.Resolve(configDir, IndexMarker)
	if err != nil {
		return Config{}, err
	}
	root := filepath.Dir(docDir)

	cfg := baseConfig()
	cfg.RootDir = root
	cfg.DocDir = docDir
	cfg.Project = filepath.Base(root)
	cfg.DisabledExtensions = append(cfg.DisabledExtensions, "sphinx.ext.autodoc")
	cfg.SrcDir = optionalDir(filepath.Join(root, "src"))
	cfg.BuildDir = optionalDir(filepath.Join(root, "build"))
	if cfg.BuildDir != "" {
		cfg.DoxygenDir = optionalDir(filepath.Join(cfg.BuildDir, "doxygen"))
		cfg.SphinxDir = optionalDir(filepath.Join(cfg.BuildDir, "sphinx"))
	}

	cfg.TemplatesPath = []string{filepath.Join(docDir, "_templates")}
	cfg.HTMLStaticPath = append(cfg.HTMLStaticPath, filepath.Join(docDir, "_static"))
	if cfg.DoxygenDir != "" {
		cfg.HTMLExtraPath = append(cfg.HTMLExtraPath, cfg.DoxygenDir)
	}
	return cfg, nil
}
