// Where: internal/docconfig/render.go
// What: Output encoders for Config.
// Why: Hand the same option set to Sphinx (conf.py) or to other tooling (YAML/JSON).
package docconfig

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"

	"github.com/poruru-code/docroot/internal/meta"
)

// Output formats accepted by Render.
const (
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatPython = "python"
)

// ErrUnknownFormat is returned by Render for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	confTemplateOnce sync.Once
	confTemplate     *template.Template
	confTemplateErr  error
)

type confTemplateData struct {
	Generator     string
	OverridesFile string
	Config        Config
}

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatYAML, FormatJSON, FormatPython}
}

// Render writes cfg to w in the requested format.
func Render(w io.Writer, cfg Config, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		payload, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		payload = append(payload, '\n')
		_, err = w.Write(payload)
		return err
	case FormatPython, "py":
		content, err := RenderConfPy(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, content)
		return err
	default:
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// RenderConfPy renders cfg as a Sphinx conf.py module.
func RenderConfPy(cfg Config) (string, error) {
	tmpl, err := loadConfTemplate()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	data := confTemplateData{
		Generator:     meta.AppName,
		OverridesFile: OverridesFileName,
		Config:        cfg,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render conf.py: %w", err)
	}
	return buf.String(), nil
}

func loadConfTemplate() (*template.Template, error) {
	confTemplateOnce.Do(func() {
		content, err := templateFS.ReadFile("templates/conf.py.tmpl")
		if err != nil {
			confTemplateErr = err
			return
		}
		funcs := sprig.TxtFuncMap()
		funcs["pystr"] = pythonString
		funcs["pylist"] = pythonList
		confTemplate, confTemplateErr = template.New("conf.py").Funcs(funcs).Parse(string(content))
	})
	return confTemplate, confTemplateErr
}

// pythonString quotes value as a Python string literal. Go escape
// sequences produced by strconv.Quote are all valid in Python 3.
func pythonString(value string) string {
	return strconv.Quote(value)
}

func pythonList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, value := range values {
		b.WriteString("\t")
		b.WriteString(pythonString(value))
		b.WriteString(",\n")
	}
	b.WriteString("]")
	return b.String()
}
