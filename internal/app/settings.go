// Where: internal/app/settings.go
// What: settings subcommands.
// Why: Inspect and initialize ~/.docroot/config.yaml.
package app

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/docroot/internal/config"
	"github.com/poruru-code/docroot/internal/meta"
	"github.com/poruru-code/docroot/internal/ui"
)

func runSettingsPath(_ CLI, deps Dependencies, out io.Writer) int {
	path, err := deps.SettingsPath()
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintln(out, path)
	return 0
}

func runSettingsShow(_ CLI, deps Dependencies, out io.Writer) int {
	cfg, err := loadSettings(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := out.Write(payload); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func runSettingsInit(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := deps.SettingsPath()
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := os.Stat(path); err == nil && !cli.Settings.Init.Force {
		return exitWithSuggestion(out, fmt.Sprintf("Settings already exist at %s", path), []string{
			meta.AppName + " settings init --force",
		})
	}
	if err := config.SaveGlobalConfig(path, config.DefaultGlobalConfig()); err != nil {
		return exitWithError(out, err)
	}
	ui.New(out).Success(fmt.Sprintf("Wrote %s", path))
	return 0
}
