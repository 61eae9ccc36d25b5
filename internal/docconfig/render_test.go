// Where: internal/docconfig/render_test.go
// What: Tests for config renderers.
// Why: Ensure YAML, JSON, and conf.py output stay in sync with Config.
package docconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleConfig() Config {
	cfg := baseConfig()
	cfg.Profile = ProfileProject
	cfg.ConfigDir = "/work/repo/docs/_config"
	cfg.RootDir = "/work/repo"
	cfg.SrcDir = "/work/repo/src"
	cfg.DocDir = "/work/repo/docs"
	cfg.BuildDir = "/work/repo/build"
	cfg.DoxygenDir = "/work/repo/build/doxygen"
	cfg.SphinxDir = "/work/repo/build/sphinx"
	cfg.Project = `it's "quoted"`
	cfg.TemplatesPath = []string{"/work/repo/docs/_templates"}
	cfg.HTMLExtraPath = []string{cfg.DoxygenDir}
	return cfg
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	cfg := sampleConfig()
	var buf bytes.Buffer
	if err := Render(&buf, cfg, FormatYAML); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if decoded.RootDir != cfg.RootDir || decoded.Project != cfg.Project {
		t.Fatalf("unexpected decoded config %+v", decoded)
	}
	if !strings.Contains(buf.String(), "html_theme: sphinx_rtd_theme") {
		t.Fatalf("expected html_theme key, got:\n%s", buf.String())
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleConfig(), FormatJSON); err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded["myst_heading_anchors"] != float64(4) {
		t.Fatalf("unexpected anchors %v", decoded["myst_heading_anchors"])
	}
	if _, ok := decoded["breathe_projects"]; ok {
		t.Fatalf("expected breathe_projects to be omitted")
	}
}

func TestRenderConfPy(t *testing.T) {
	cfg := sampleConfig()
	cfg.Extensions = append(cfg.Extensions, "breathe")
	cfg.DisabledExtensions = []string{"sphinx_csharp"}
	cfg.finalize()

	out, err := RenderConfPy(cfg)
	if err != nil {
		t.Fatalf("render conf.py: %v", err)
	}

	wants := []string{
		`rootdir = "/work/repo"`,
		`doxygendir = "/work/repo/build/doxygen"`,
		`project = "it's \"quoted\""`,
		"extensions = [\n\t\"myst_parser\",\n\t\"sphinx_rtd_theme\",\n\t\"breathe\",\n]",
		"# disabled: sphinx_csharp",
		"breathe_projects = {\n\t\"api\": \"/work/repo/build/doxygen\",\n}",
		`breathe_default_project = "api"`,
		`html_theme = "sphinx_rtd_theme"`,
		"html_static_path = []",
		"myst_heading_anchors = 4",
		`author = ""`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected conf.py to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderConfPyOmitsMissingDirs(t *testing.T) {
	cfg := sampleConfig()
	cfg.SrcDir = ""
	cfg.BuildDir = ""
	cfg.DoxygenDir = ""
	cfg.SphinxDir = ""

	out, err := RenderConfPy(cfg)
	if err != nil {
		t.Fatalf("render conf.py: %v", err)
	}
	for _, name := range []string{"srcdir =", "builddir =", "doxygendir =", "sphinxdir =", "breathe_projects"} {
		if strings.Contains(out, name) {
			t.Fatalf("expected %q to be omitted, got:\n%s", name, out)
		}
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleConfig(), "toml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
