package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"skilld/internal/bootstrap"
	"skilld/internal/providers"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd(opts bootstrap.Options, executor bootstrap.Executor) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap [importer args...]",
		Short: "Seed the database by running the importer for every known game version",
		Long: `Runs "<importer> --series <s> --version <v> [importer args...]" once per
target, in order, and stops at the first failing import. The exit status
is the failing importer's exit status. Every argument is passed to the
importer unchanged.

Environment:
  BOOTSTRAP_IMPORTER  path to the read importer (default ./read)
  BOOTSTRAP_TARGETS   TOML or YAML file overriding the built in target list
  BOOTSTRAP_LIST      print the targets and exit
  BOOTSTRAP_DEBUG     log each invocation to stderr`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, executor, args)
		},
	}
}

func run(cmd *cobra.Command, opts bootstrap.Options, executor bootstrap.Executor, args []string) error {
	level := "warn"
	if opts.Debug {
		level = "debug"
	}
	logger, err := providers.NewConsoleLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	targets := bootstrap.DefaultTargets()
	if opts.TargetsPath != "" {
		if targets, err = bootstrap.LoadTargets(opts.TargetsPath); err != nil {
			return err
		}
	}

	if opts.List {
		for _, t := range targets {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := bootstrap.NewRunner(opts.Importer, targets, executor, logger)
	return runner.Run(ctx, args)
}

// main prints only its own errors; a failed import already reported itself.
func main() {
	cmd := newRootCmd(bootstrap.LoadOptions(), bootstrap.NewCommandExecutor())
	err := cmd.ExecuteContext(context.Background())
	var step *bootstrap.StepError
	if err != nil && !errors.As(err, &step) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(bootstrap.ExitCode(err))
}
