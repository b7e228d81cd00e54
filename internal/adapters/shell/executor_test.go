//go:build !windows

package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/shell"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type recordingSpan struct {
	mu    sync.Mutex
	name  string
	buf   bytes.Buffer
	err   error
	ended bool
	attrs map[string]any
}

func (s *recordingSpan) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *recordingSpan) End() { s.ended = true }

func (s *recordingSpan) RecordError(err error) { s.err = err }

func (s *recordingSpan) SetAttribute(key string, value any) {
	if s.attrs == nil {
		s.attrs = make(map[string]any)
	}
	s.attrs[key] = value
}

func (s *recordingSpan) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type recordingTracer struct {
	spans []*recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	s := &recordingSpan{name: name}
	r.spans = append(r.spans, s)
	return ctx, s
}

func (r *recordingTracer) EmitPlan(context.Context, []string) {}

func newExecutor(t *testing.T) (*shell.Executor, *recordingTracer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	tracer := &recordingTracer{}
	return shell.NewExecutor(log, tracer), tracer
}

func TestExecutor_Run_StreamsOutputIntoSpan(t *testing.T) {
	executor, tracer := newExecutor(t)

	cmd := domain.Command{
		Name: "hooks",
		Args: []string{"sh", "-c", "echo to stdout; echo to stderr >&2"},
		Dir:  t.TempDir(),
	}

	require.NoError(t, executor.Run(context.Background(), cmd))

	require.Len(t, tracer.spans, 1)
	span := tracer.spans[0]
	assert.Equal(t, "hooks", span.name)
	assert.Contains(t, span.output(), "to stdout")
	assert.Contains(t, span.output(), "to stderr")
	assert.True(t, span.ended)
	assert.NoError(t, span.err)
}

func TestExecutor_Run_Failure(t *testing.T) {
	executor, tracer := newExecutor(t)
	dir := t.TempDir()

	err := executor.Run(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "exit 3"},
		Dir:  dir,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "sh -c 'exit 3'", meta["command"])
	assert.Equal(t, dir, meta["dir"])

	require.Len(t, tracer.spans, 1)
	assert.ErrorIs(t, tracer.spans[0].err, domain.ErrCommandFailed)
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	executor, tracer := newExecutor(t)

	err := executor.Run(context.Background(), domain.Command{})

	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
	assert.Empty(t, tracer.spans)
}

func TestExecutor_Run_CommandNotFound(t *testing.T) {
	executor, _ := newExecutor(t)

	err := executor.Run(context.Background(), domain.Command{
		Args: []string{"ucb-test-definitely-missing"},
		Dir:  t.TempDir(),
	})

	assert.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestExecutor_Run_PathPrefix(t *testing.T) {
	executor, tracer := newExecutor(t)

	tools := t.TempDir()
	script := "#!/bin/sh\necho fake gclient \"$@\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tools, "gclient"), []byte(script), 0o755))

	cmd := domain.NewCommand(t.TempDir(), "gclient", "runhooks").WithPathPrefix(tools)
	require.NoError(t, executor.Run(context.Background(), cmd))

	require.Len(t, tracer.spans, 1)
	assert.Contains(t, tracer.spans[0].output(), "fake gclient runhooks")
}

func TestExecutor_Run_RelativeExecutableResolvedAgainstDir(t *testing.T) {
	executor, tracer := newExecutor(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build"), 0o750))
	script := "#!/bin/sh\necho installing deps\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "deps.sh"), []byte(script), 0o755))

	require.NoError(t, executor.Run(context.Background(), domain.NewCommand(dir, "build/deps.sh")))
	assert.Contains(t, tracer.spans[0].output(), "installing deps")
}

func TestExecutor_Run_Stdin(t *testing.T) {
	executor, tracer := newExecutor(t)

	cmd := domain.Command{
		Args:  []string{"cat"},
		Dir:   t.TempDir(),
		Stdin: "call vcvars64.bat\n",
		TTY:   true,
	}
	require.NoError(t, executor.Run(context.Background(), cmd))
	assert.Equal(t, "call vcvars64.bat\n", tracer.spans[0].output())
}

func TestExecutor_Output(t *testing.T) {
	executor, tracer := newExecutor(t)

	out, err := executor.Output(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo $UCB_VALUE; echo oops >&2; exit 1"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"UCB_VALUE": "abc"},
	})

	require.NoError(t, err)
	assert.Equal(t, "abc\n", out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
	assert.Equal(t, 1, out.ExitCode)
	assert.False(t, out.Success())
	assert.Empty(t, tracer.spans, "captured commands do not open spans")
}

func TestExecutor_Output_Trimmed(t *testing.T) {
	executor, _ := newExecutor(t)

	out, err := executor.Output(context.Background(), domain.NewCommand(t.TempDir(), "sh", "-c", "echo '  v1  '"))
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Equal(t, "v1", out.Trimmed())
}

func TestExecutor_Output_CommandNotFound(t *testing.T) {
	executor, _ := newExecutor(t)

	_, err := executor.Output(context.Background(), domain.NewCommand(t.TempDir(), "ucb-test-definitely-missing"))
	assert.ErrorIs(t, err, domain.ErrCommandNotFound)
}
