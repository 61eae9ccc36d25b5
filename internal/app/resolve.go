// Where: internal/app/resolve.go
// What: resolve command.
// Why: Expose marker-anchored resolution to shell scripts and build tools.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/poruru-code/docroot/internal/docconfig"
	"github.com/poruru-code/docroot/internal/meta"
	"github.com/poruru-code/docroot/internal/resolver"
)

// runResolve prints the resolved directory on success. Nothing else is
// written to out so the result can be captured directly.
func runResolve(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Resolve

	marker, ok, err := resolveMarker(cmd)
	if err != nil {
		return exitWithError(out, err)
	}
	if !ok {
		return exitWithSuggestion(out, "Marker required.", []string{
			meta.AppName + " resolve index.md",
			meta.AppName + " resolve '*.csproj'",
			meta.AppName + " resolve --profile index",
		})
	}

	start, err := startDir(cli, deps, cmd.Start)
	if err != nil {
		return exitWithError(out, err)
	}

	dir, err := resolver.Resolve(start, marker)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintln(out, dir)
	return 0
}

// resolveMarker prefers an explicit marker over a profile's marker.
func resolveMarker(cmd ResolveCmd) (resolver.Marker, bool, error) {
	value := strings.TrimSpace(cmd.Marker)
	if value == "" {
		name := strings.TrimSpace(cmd.Profile)
		if name == "" {
			return resolver.Marker{}, false, nil
		}
		marker, ok := docconfig.MarkerFor(name)
		if !ok {
			return resolver.Marker{}, false, fmt.Errorf("%w %q", docconfig.ErrUnknownProfile, name)
		}
		return marker, true, nil
	}
	if cmd.Exact {
		return resolver.File(value), true, nil
	}
	marker, err := resolver.ParseMarker(value)
	if err != nil {
		return resolver.Marker{}, false, err
	}
	return marker, true, nil
}
