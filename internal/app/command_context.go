// Where: internal/app/command_context.go
// What: Shared helpers for command handlers.
// Why: Keep start-directory and settings resolution identical across commands.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/docroot/internal/config"
	"github.com/poruru-code/docroot/internal/resolver"
	"github.com/poruru-code/docroot/internal/ui"
)

// exitWithError prints err and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	console := ui.New(out)
	console.Error(err.Error())
	var notFound *resolver.NotFoundError
	if errors.As(err, &notFound) {
		console.Info(fmt.Sprintf("searched upward from %s to the filesystem root", notFound.Start))
	}
	return 1
}

// exitWithSuggestion prints a warning followed by next-step hints.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	console := ui.New(out)
	console.Warn(message)
	if len(suggestions) > 0 {
		fmt.Fprintln(out)
		console.Info("💡 Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "   - %s\n", s)
		}
	}
	return 1
}

// startDir returns the directory commands search from: an explicit
// argument, then --dir, then the working directory.
func startDir(cli CLI, deps Dependencies, explicit string) (string, error) {
	for _, candidate := range []string{explicit, cli.Dir, deps.WorkDir} {
		if value := strings.TrimSpace(candidate); value != "" {
			return value, nil
		}
	}
	return os.Getwd()
}

// loadSettings reads user settings, falling back to defaults when the file
// is absent.
func loadSettings(deps Dependencies) (config.GlobalConfig, error) {
	path, err := deps.SettingsPath()
	if err != nil {
		return config.GlobalConfig{}, fmt.Errorf("resolve settings path: %w", err)
	}
	cfg, err := config.LoadGlobalConfigOrDefault(path)
	if err != nil {
		return config.GlobalConfig{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return cfg, nil
}
