// Where: internal/docconfig/overrides.go
// What: Optional per-repository overrides file.
// Why: Let projects adjust metadata and extensions without editing generated config.
package docconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const overridesSchemaURL = "docroot://overrides.schema.json"

//go:embed schema/overrides.schema.json
var overridesSchemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ErrInvalidOverrides is returned when an overrides file fails validation.
var ErrInvalidOverrides = errors.New("invalid overrides")

// Overrides adjusts a built Config.
type Overrides struct {
	Project            *string  `json:"project,omitempty"`
	Copyright          *string  `json:"copyright,omitempty"`
	Author             *string  `json:"author,omitempty"`
	Theme              *string  `json:"theme,omitempty"`
	Extensions         []string `json:"extensions,omitempty"`
	Enable             []string `json:"enable,omitempty"`
	ExcludePatterns    []string `json:"exclude_patterns,omitempty"`
	MystHeadingAnchors *int     `json:"myst_heading_anchors,omitempty"`
}

// LoadOverrides reads path. found is false when the file does not exist.
func LoadOverrides(path string) (Overrides, bool, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Overrides{}, false, nil
		}
		return Overrides{}, false, fmt.Errorf("read overrides %s: %w", path, err)
	}
	overrides, err := ParseOverrides(payload)
	if err != nil {
		return Overrides{}, true, fmt.Errorf("%s: %w", path, err)
	}
	return overrides, true, nil
}

// ParseOverrides validates YAML content against the overrides schema and
// decodes it.
func ParseOverrides(content []byte) (Overrides, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Overrides{}, nil
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: convert yaml to json: %v", ErrInvalidOverrides, err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Overrides{}, fmt.Errorf("%w: decode json: %v", ErrInvalidOverrides, err)
	}

	sch, err := loadOverridesSchema()
	if err != nil {
		return Overrides{}, err
	}
	if err := sch.Validate(document); err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}

	var overrides Overrides
	if err := json.Unmarshal(jsonData, &overrides); err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}
	return overrides, nil
}

func loadOverridesSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(overridesSchemaURL, bytes.NewReader(overridesSchemaSource)); err != nil {
			schemaErr = fmt.Errorf("load overrides schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(overridesSchemaURL)
	})
	return compiledSchema, schemaErr
}

func (o Overrides) apply(cfg *Config) {
	if o.Project != nil {
		cfg.Project = *o.Project
	}
	if o.Copyright != nil {
		cfg.Copyright = *o.Copyright
	}
	if o.Author != nil {
		cfg.Author = *o.Author
	}
	if o.Theme != nil {
		cfg.HTMLTheme = *o.Theme
	}
	// enable and extensions both switch a name on; a name is never listed
	// as enabled and disabled at once.
	enabled := append(append([]string{}, o.Enable...), o.Extensions...)
	cfg.Extensions = appendUnique(cfg.Extensions, enabled...)
	cfg.DisabledExtensions = slices.DeleteFunc(cfg.DisabledExtensions, func(v string) bool {
		return slices.Contains(cfg.Extensions, v)
	})
	cfg.ExcludePatterns = appendUnique(cfg.ExcludePatterns, o.ExcludePatterns...)
	if o.MystHeadingAnchors != nil {
		cfg.MystHeadingAnchors = *o.MystHeadingAnchors
	}
}
