// Where: internal/headerimport/importer.go
// What: Preprocess a C header and feed it to an external parser.
// Why: Drive the decompiler header-import workflow from one command.
package headerimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/docroot/internal/meta"
)

var (
	// ErrHeaderNotFound is returned when the header path does not exist.
	ErrHeaderNotFound = errors.New("header file not found")
	// ErrPreprocess is returned when the preprocessor fails.
	ErrPreprocess = errors.New("preprocessor failed")
	// ErrParse is returned when the parser rejects the preprocessed input.
	ErrParse = errors.New("parser failed")
)

// DefaultPreprocessor is used when Options.Preprocessor is empty.
var DefaultPreprocessor = []string{"cpp", "-P"}

// DefaultDefines are passed to the preprocessor when Options.Defines is nil.
var DefaultDefines = []string{"_GHIDRA_"}

// Options configures an Importer.
type Options struct {
	Preprocessor []string
	Parser       []string
	Defines      []string
	// LogPath receives diagnostics when the parser fails. Empty means
	// meta.DefaultImportLog in the working directory.
	LogPath string
}

// Result is a successful import.
type Result struct {
	Header       string
	Preprocessed []byte
	// ParserOutput is empty when no parser is configured.
	ParserOutput []byte
	Parsed       bool
}

// ParseError carries the location of the diagnostic log.
type ParseError struct {
	LogPath string
	Err     error
}

func (e *ParseError) Error() string {
	if e.LogPath == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %v (preprocessed input saved to %s)", ErrParse, e.Err, e.LogPath)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Importer runs the preprocess and parse steps.
type Importer struct {
	runner CommandRunner
	opts   Options
}

// New creates an Importer. A nil runner uses ExecRunner.
func New(runner CommandRunner, opts Options) *Importer {
	if runner == nil {
		runner = ExecRunner{}
	}
	if len(opts.Preprocessor) == 0 {
		opts.Preprocessor = DefaultPreprocessor
	}
	if opts.Defines == nil {
		opts.Defines = DefaultDefines
	}
	if strings.TrimSpace(opts.LogPath) == "" {
		opts.LogPath = meta.DefaultImportLog
	}
	return &Importer{runner: runner, opts: opts}
}

// Import preprocesses header and, when a parser is configured, parses the
// result.
func (i *Importer) Import(ctx context.Context, header string) (Result, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Result{}, fmt.Errorf("%w: empty path", ErrHeaderNotFound)
	}
	abs, err := filepath.Abs(header)
	if err != nil {
		return Result{}, fmt.Errorf("resolve header path: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrHeaderNotFound, abs)
	}

	result := Result{Header: abs}
	preprocessed, err := i.preprocess(ctx, abs)
	if err != nil {
		return Result{}, err
	}
	result.Preprocessed = preprocessed

	if len(i.opts.Parser) == 0 {
		return result, nil
	}

	name, args := i.opts.Parser[0], i.opts.Parser[1:]
	stdout, stderr, err := i.runner.Output(ctx, bytes.NewReader(preprocessed), name, args...)
	if err != nil {
		return Result{}, i.saveDiagnostics(preprocessed, stdout, stderr, err)
	}
	result.ParserOutput = stdout
	result.Parsed = true
	return result, nil
}

func (i *Importer) preprocess(ctx context.Context, header string) ([]byte, error) {
	name := i.opts.Preprocessor[0]
	args := append([]string{}, i.opts.Preprocessor[1:]...)
	for _, define := range i.opts.Defines {
		define = strings.TrimSpace(define)
		if define == "" {
			continue
		}
		args = append(args, "-D"+define)
	}
	args = append(args, header)

	stdout, stderr, err := i.runner.Output(ctx, nil, name, args...)
	if err != nil {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			return nil, fmt.Errorf("%w: %s: %v", ErrPreprocess, name, err)
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrPreprocess, name, err, detail)
	}
	return stdout, nil
}

// saveDiagnostics writes the preprocessed text and parser output so the
// failing input can be inspected.
func (i *Importer) saveDiagnostics(preprocessed, stdout, stderr []byte, cause error) error {
	var buf bytes.Buffer
	buf.Write(preprocessed)
	if len(preprocessed) > 0 && !bytes.HasSuffix(preprocessed, []byte("\n")) {
		buf.WriteByte('\n')
	}
	for _, section := range [][]byte{stdout, stderr} {
		if len(bytes.TrimSpace(section)) == 0 {
			continue
		}
		buf.WriteString("\n/* parser output */\n")
		buf.Write(section)
	}

	path := i.opts.LogPath
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ParseError{Err: errors.Join(cause, fmt.Errorf("create log dir: %w", err))}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &ParseError{Err: errors.Join(cause, fmt.Errorf("write log: %w", err))}
	}
	return &ParseError{LogPath: path, Err: cause}
}
