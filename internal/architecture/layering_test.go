// Where: internal/architecture/layering_test.go
// What: Import guard tests for internal packages.
// Why: Keep the resolver and library packages free of CLI concerns.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/poruru-code/docroot/internal/resolver"
)

const internalImportPrefix = "github.com/poruru-code/docroot/internal/"

// allowedImports lists, per package, the internal packages it may import.
// Packages missing from the map may import anything.
var allowedImports = map[string][]string{
	"resolver":     {},
	"meta":         {},
	"envutil":      {"meta"},
	"version":      {},
	"ui":           {},
	"interaction":  {},
	"config":       {"envutil", "meta"},
	"docconfig":    {"resolver", "meta"},
	"headerimport": {"meta"},
	"app": {
		"config", "docconfig", "envutil", "headerimport",
		"interaction", "meta", "resolver", "ui", "version",
	},
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	violations := []string{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		source := topLayer(rel)
		allowed, restricted := allowedImports[source]
		if !restricted {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}

		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			target := topLayerFromImport(importPath)
			if target == "" || target == source {
				continue
			}
			if !contains(allowed, target) {
				violations = append(violations, rel+" -> "+importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := resolver.Resolve(wd, resolver.File("go.mod"))
	if err != nil {
		t.Fatalf("resolve module root: %v", err)
	}
	return filepath.Join(root, "internal")
}

func topLayer(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func topLayerFromImport(importPath string) string {
	if !strings.HasPrefix(importPath, internalImportPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(importPath, internalImportPrefix)
	parts := strings.Split(rest, "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
