// Where: internal/wire/wire.go
// What: CLI dependency wiring.
// Why: Centralize CLI dependency construction for reuse by main and tests.
package wire

import (
	"os"

	"github.com/poruru-code/docroot/internal/app"
	"github.com/poruru-code/docroot/internal/config"
	"github.com/poruru-code/docroot/internal/headerimport"
	"github.com/poruru-code/docroot/internal/interaction"
)

var (
	// Getwd returns the current working directory. Tests may override this helper.
	Getwd = os.Getwd
	// Stdout is the writer used for CLI output (used by app.Dependencies).
	Stdout = os.Stdout
	// Stdin is checked for a terminal before prompting.
	Stdin = os.Stdin
)

// BuildDependencies constructs CLI dependencies.
func BuildDependencies() (app.Dependencies, error) {
	workDir, err := Getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:      workDir,
		Out:          Stdout,
		Stdin:        Stdin,
		Prompter:     interaction.HuhPrompter{},
		Runner:       headerimport.ExecRunner{Dir: workDir},
		SettingsPath: config.GlobalConfigPath,
	}, nil
}
