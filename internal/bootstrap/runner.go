package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"skilld/internal/providers"
	"slices"
)

// DefaultImporter is the importer path used when none is configured.
const DefaultImporter = "./read"

// Executor runs one importer invocation to completion.
type Executor interface {
	Execute(ctx context.Context, name string, args []string) error
}

// StepError reports the first target that failed. Targets after Index
// were not run.
type StepError struct {
	Index  int
	Target Target
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("import %d (%s) failed: %s", e.Index+1, e.Target, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type Runner struct {
	importer string
	targets  []Target
	executor Executor
	logger   providers.Logger
}

func NewRunner(importer string, targets []Target, executor Executor, logger providers.Logger) *Runner {
	if importer == "" {
		importer = DefaultImporter
	}
	return &Runner{
		importer: importer,
		targets:  slices.Clone(targets),
		executor: executor,
		logger:   logger,
	}
}

func (r *Runner) Targets() []Target {
	return slices.Clone(r.targets)
}

// Run invokes the importer for every target in order, appending args to
// each invocation unchanged. It stops at the first failure.
func (r *Runner) Run(ctx context.Context, args []string) error {
	for i, t := range r.targets {
		if err := ctx.Err(); err != nil {
			return &StepError{Index: i, Target: t, Err: err}
		}

		argv := append(t.Args(), args...)
		r.logger.Debugf(providers.TypeApp, "Running %s %v (%d/%d)", r.importer, argv, i+1, len(r.targets))
		if err := r.executor.Execute(ctx, r.importer, argv); err != nil {
			r.logger.Debugf(providers.TypeApp, "Import of %s failed: %s", t, err)
			return &StepError{Index: i, Target: t, Err: err}
		}
	}
	return nil
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps a Run error to a process exit status: 0 for nil, the
// importer's own status when it exited non-zero, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) && ec.ExitCode() > 0 {
		return ec.ExitCode()
	}
	return 1
}
