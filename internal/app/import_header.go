// Where: internal/app/import_header.go
// What: import-header command.
// Why: Run the preprocessor/parser pair against one header file.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/docroot/internal/headerimport"
	"github.com/poruru-code/docroot/internal/interaction"
	"github.com/poruru-code/docroot/internal/meta"
	"github.com/poruru-code/docroot/internal/ui"
)

var errHeaderRequired = errors.New("header file required")

func runImportHeader(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.ImportHeader
	console := ui.New(out)

	settings, err := loadSettings(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	base, err := startDir(cli, deps, "")
	if err != nil {
		return exitWithError(out, err)
	}

	header, err := resolveHeaderPath(cmd.Header, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	opts := headerimport.Options{
		Preprocessor: settings.HeaderImport.Preprocessor,
		Parser:       settings.HeaderImport.Parser,
		Defines:      settings.HeaderImport.Defines,
		LogPath:      within(base, firstNonEmpty(cmd.Log, settings.HeaderImport.LogPath, meta.DefaultImportLog)),
	}
	if fields := strings.Fields(cmd.Preprocessor); len(fields) > 0 {
		opts.Preprocessor = fields
	}
	if fields := strings.Fields(cmd.Parser); len(fields) > 0 {
		opts.Parser = fields
	}
	if len(cmd.Define) > 0 {
		opts.Defines = cmd.Define
	}

	result, err := headerimport.New(runnerIn(deps.Runner, base), opts).Import(context.Background(), within(base, header))
	if err != nil {
		var parseErr *headerimport.ParseError
		if errors.As(err, &parseErr) && parseErr.LogPath != "" {
			console.Error("Parsing failed")
			console.Item("Log", parseErr.LogPath)
			console.Item("Reason", parseErr.Err)
			return 1
		}
		return exitWithError(out, err)
	}

	if !result.Parsed {
		if _, err := out.Write(result.Preprocessed); err != nil {
			return exitWithError(out, err)
		}
		return 0
	}

	if len(result.ParserOutput) > 0 {
		if _, err := out.Write(result.ParserOutput); err != nil {
			return exitWithError(out, err)
		}
	}
	console.Success(fmt.Sprintf("Imported %s", result.Header))
	return 0
}

// within resolves a relative path against the command's start directory.
func within(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// runnerIn runs external tools from base unless a custom runner is injected.
func runnerIn(runner headerimport.CommandRunner, base string) headerimport.CommandRunner {
	switch r := runner.(type) {
	case nil:
		return headerimport.ExecRunner{Dir: base}
	case headerimport.ExecRunner:
		r.Dir = base
		return r
	default:
		return runner
	}
}

// resolveHeaderPath prompts for a header only when stdin is a terminal.
func resolveHeaderPath(arg string, deps Dependencies) (string, error) {
	if header := strings.TrimSpace(arg); header != "" {
		return header, nil
	}
	stdin := deps.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if deps.Prompter == nil || !interaction.IsTerminal(stdin) {
		return "", errHeaderRequired
	}
	header, err := deps.Prompter.Input("Select header file", nil)
	if err != nil {
		return "", fmt.Errorf("prompt header file: %w", err)
	}
	if strings.TrimSpace(header) == "" {
		return "", errHeaderRequired
	}
	return header, nil
}
