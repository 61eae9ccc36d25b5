// Where: internal/app/config_cmd.go
// What: config command.
// Why: Print the documentation build configuration for a profile.
package app

import (
	"io"
	"strings"

	"github.com/poruru-code/docroot/internal/docconfig"
	"github.com/poruru-code/docroot/internal/envutil"
)

func runConfig(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Config

	settings, err := loadSettings(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	start, err := startDir(cli, deps, "")
	if err != nil {
		return exitWithError(out, err)
	}

	cfg, err := docconfig.Build(docconfig.Options{
		Profile:       firstNonEmpty(cmd.Profile, envutil.GetHostEnv(envutil.SuffixProfile), settings.DefaultProfile),
		ConfigDir:     start,
		OverridesPath: cmd.Overrides,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	format := firstNonEmpty(cmd.Format, settings.DefaultFormat)
	if err := docconfig.Render(out, cfg, format); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
