package bootstrap

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// CommandExecutor runs the importer as a child process sharing the
// caller's standard streams.
type CommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *CommandExecutor) Execute(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}
