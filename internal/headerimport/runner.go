// Where: internal/headerimport/runner.go
// What: External command execution for the header import.
// Why: Keep os/exec behind an interface so the import flow is testable.
package headerimport

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	// Output runs name with args and returns stdout. stderr is returned
	// alongside so callers can log it.
	Output(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Output(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
