// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/poruru-code/docroot/internal/config"
	"github.com/poruru-code/docroot/internal/headerimport"
	"github.com/poruru-code/docroot/internal/interaction"
	"github.com/poruru-code/docroot/internal/meta"
	"github.com/poruru-code/docroot/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	WorkDir      string
	Out          io.Writer
	Stdin        *os.File
	Prompter     interaction.Prompter
	Runner       headerimport.CommandRunner
	SettingsPath func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Dir          string          `short:"C" name:"dir" help:"Start directory for searches and relative paths (default: current directory)"`
	Resolve      ResolveCmd      `cmd:"" help:"Print the nearest ancestor directory containing a marker"`
	Config       ConfigCmd       `cmd:"" name:"config" help:"Print the documentation build configuration"`
	ImportHeader ImportHeaderCmd `cmd:"" name:"import-header" help:"Preprocess a C header and pass it to a parser"`
	Settings     SettingsCmd     `cmd:"" help:"Manage user settings"`
	Version      VersionCmd      `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type (
	ResolveCmd struct {
		Marker  string `arg:"" optional:"" help:"File name or glob pattern (e.g. index.md, *.csproj)"`
		Start   string `arg:"" optional:"" help:"Start directory (default: --dir)"`
		Exact   bool   `help:"Treat the marker as a literal file name"`
		Profile string `short:"p" help:"Use the marker of a config profile (project, index)"`
	}
	ConfigCmd struct {
		Profile   string `short:"p" help:"Profile (project, index)"`
		Format    string `short:"o" help:"Output format (yaml, json, python)"`
		Overrides string `help:"Overrides file (default: <root>/docroot.yml)"`
	}
	ImportHeaderCmd struct {
		Header       string   `arg:"" optional:"" help:"Header file to import"`
		Preprocessor string   `help:"Preprocessor command line (default: cpp -P)"`
		Parser       string   `help:"Parser command line; reads preprocessed text on stdin"`
		Define       []string `short:"D" help:"Preprocessor define (repeatable)"`
		Log          string   `help:"Diagnostic log written when parsing fails"`
	}
)

type SettingsCmd struct {
	Path SettingsPathCmd `cmd:"" help:"Print the settings file path"`
	Show SettingsShowCmd `cmd:"" help:"Print effective settings"`
	Init SettingsInitCmd `cmd:"" help:"Write default settings"`
}

type (
	SettingsPathCmd struct{}
	SettingsShowCmd struct{}
	SettingsInitCmd struct {
		Force bool `help:"Overwrite an existing settings file"`
	}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.SettingsPath == nil {
		deps.SettingsPath = config.GlobalConfigPath
	}

	if len(args) == 0 {
		return exitWithSuggestion(out, "Command required.", []string{
			meta.AppName + " resolve <marker>",
			meta.AppName + " config --profile project",
			meta.AppName + " --help",
		})
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Locate documentation roots and emit build configuration."),
		kong.Writers(out, out),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"config":        runConfig,
		"import-header": runImportHeader,
		"settings path": runSettingsPath,
		"settings show": runSettingsShow,
		"settings init": runSettingsInit,
		"version":       func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "resolve", handler: runResolve},
		{prefix: "import-header", handler: runImportHeader},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// handleParseError turns missing-subcommand errors into usage hints.
func handleParseError(args []string, err error, out io.Writer) int {
	if commandName(args) == "settings" && strings.Contains(err.Error(), "expected one of") {
		return exitWithSuggestion(out, "Settings subcommand required.", []string{
			meta.AppName + " settings path",
			meta.AppName + " settings show",
			meta.AppName + " settings init",
		})
	}
	return exitWithError(out, err)
}

// commandName extracts the first non-flag argument, skipping the value of
// the global --dir flag.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-C", "--dir":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}
