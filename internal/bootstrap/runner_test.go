package bootstrap

import (
	"context"
	"errors"
	"skilld/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

// fakeExecutor records invocations and fails on call number failOn (1 based).
type fakeExecutor struct {
	calls  []call
	failOn int
	err    error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args []string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	if len(f.calls) == f.failOn {
		return f.err
	}
	return nil
}

type exitErr struct{ code int }

func (e exitErr) Error() string { return "exit status" }
func (e exitErr) ExitCode() int { return e.code }

func TestRunner_RunsAllInOrder(t *testing.T) {
	exec := &fakeExecutor{}
	targets := DefaultTargets()
	r := NewRunner("", targets, exec, &testutil.MockLogger{})

	require.NoError(t, r.Run(context.Background(), []string{"--config", "server.yaml"}))
	require.Len(t, exec.calls, len(targets))
	for i, c := range exec.calls {
		assert.Equal(t, DefaultImporter, c.name)
		assert.Equal(t, append(targets[i].Args(), "--config", "server.yaml"), c.args)
	}
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	for _, n := range []int{1, 5, len(DefaultTargets())} {
		exec := &fakeExecutor{failOn: n, err: exitErr{code: 3}}
		targets := DefaultTargets()
		r := NewRunner("/opt/read", targets, exec, &testutil.MockLogger{})

		err := r.Run(context.Background(), nil)
		require.Error(t, err)
		assert.Len(t, exec.calls, n, "targets after the failing one must not run")

		var step *StepError
		require.ErrorAs(t, err, &step)
		assert.Equal(t, n-1, step.Index)
		assert.Equal(t, targets[n-1], step.Target)
		assert.Equal(t, 3, ExitCode(err))
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	exec := &fakeExecutor{}
	r := NewRunner("", DefaultTargets(), exec, &testutil.MockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, exec.calls)
	assert.Equal(t, 1, ExitCode(err))
}

func TestRunner_NoOutputBeyondDebug(t *testing.T) {
	logger := &testutil.MockLogger{}
	r := NewRunner("", DefaultTargets()[:2], &fakeExecutor{failOn: 2, err: errors.New("boom")}, logger)
	_ = r.Run(context.Background(), nil)

	for _, l := range logger.Logs {
		assert.Equal(t, "debug", l.Level)
	}
}

func TestRunner_TargetsCopied(t *testing.T) {
	targets := []Target{{"pnm", "19"}}
	r := NewRunner("", targets, &fakeExecutor{}, &testutil.MockLogger{})
	targets[0].Series = "changed"
	assert.Equal(t, "pnm", r.Targets()[0].Series)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 1, ExitCode(exitErr{code: -1}))
	assert.Equal(t, 2, ExitCode(&StepError{Err: exitErr{code: 2}}))
}
