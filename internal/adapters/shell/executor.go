// Package shell runs external commands for the pipeline.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/creack/pty"
	"github.com/kballard/go-shellquote"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// pythonInterpreter runs .py scripts so they do not depend on shebang lines or exec bits.
const pythonInterpreter = "python3"

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
// Output of Run is streamed into a span per command; commands flagged TTY
// run under a pseudo terminal where the platform supports it.
type Executor struct {
	logger  ports.Logger
	tracer  ports.Tracer
	environ func() []string
}

// NewExecutor creates an Executor inheriting the process environment.
func NewExecutor(logger ports.Logger, tracer ports.Tracer) *Executor {
	return &Executor{
		logger:  logger,
		tracer:  tracer,
		environ: os.Environ,
	}
}

// Run executes cmd and streams its output into a span.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) error {
	if len(cmd.Args) == 0 {
		return zerr.Wrap(domain.ErrEmptyCommand, "cannot run command")
	}

	e.logger.Debug("$ " + shellquote.Join(argv(cmd)...))

	ctx, span := e.tracer.Start(ctx, cmd.Label())
	defer span.End()

	c, err := e.prepare(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		return err
	}

	started := false
	if cmd.TTY && cmd.Stdin == "" {
		started, err = runPTY(c, span)
		if !started {
			e.logger.Debug("no pseudo terminal for " + cmd.Label() + ": " + err.Error())
			c, err = e.prepare(ctx, cmd)
			if err != nil {
				span.RecordError(err)
				return err
			}
		}
	}
	if !started {
		err = runPipes(c, span)
	}

	if err != nil {
		err = commandError(cmd, err)
		span.RecordError(err)
		return err
	}
	return nil
}

// Output executes cmd and captures stdout and stderr.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) (domain.CommandOutput, error) {
	if len(cmd.Args) == 0 {
		return domain.CommandOutput{}, zerr.Wrap(domain.ErrEmptyCommand, "cannot run command")
	}

	e.logger.Debug("$ " + shellquote.Join(argv(cmd)...))

	c, err := e.prepare(ctx, cmd)
	if err != nil {
		return domain.CommandOutput{}, err
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err = c.Run()
	out := domain.CommandOutput{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		out.ExitCode = exitErr.ExitCode()
	default:
		return out, commandError(cmd, err)
	}
	return out, nil
}

// prepare resolves the executable against the command's own environment and builds the exec.Cmd.
func (e *Executor) prepare(ctx context.Context, cmd domain.Command) (*exec.Cmd, error) {
	args := argv(cmd)
	env := resolveEnvironment(e.environ(), cmd.PathPrefix, cmd.Env)

	name := args[0]
	executable := name
	switch {
	case filepath.IsAbs(name):
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		executable = filepath.Join(cmd.Dir, name)
	default:
		lp, err := lookPath(name, env)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrCommandNotFound, cmd.Label()), "executable", name)
		}
		executable = lp
	}

	c := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // commands are assembled by the pipeline
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = env
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}
	return c, nil
}

// argv returns the process arguments for cmd, routing Python scripts through the interpreter.
func argv(cmd domain.Command) []string {
	if strings.EqualFold(filepath.Ext(cmd.Args[0]), ".py") {
		return append([]string{pythonInterpreter}, cmd.Args...)
	}
	return cmd.Args
}

// runPTY runs c under a pseudo terminal. Stdout and stderr are merged by the terminal.
// started is false when no terminal could be allocated and c was not run.
func runPTY(c *exec.Cmd, w io.Writer) (started bool, err error) {
	ptmx, err := pty.Start(c)
	if err != nil {
		return false, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The read fails with EIO once the child exits and the terminal closes.
		_, _ = io.Copy(w, ptmx)
	}()

	err = c.Wait()
	_ = ptmx.Close()
	<-ioDone
	return true, err
}

// runPipes runs c with its output pumped into w.
func runPipes(c *exec.Cmd, w io.Writer) error {
	out := &lockedWriter{w: w}

	stdout, err := c.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return err
	}

	if err := c.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(out, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(out, stderr)
		return err
	})
	copyErr := g.Wait()

	if err := c.Wait(); err != nil {
		return err
	}
	return copyErr
}

func commandError(cmd domain.Command, err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(domain.ErrCommandFailed, cmd.Label())
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	wrapped = zerr.With(wrapped, "command", shellquote.Join(argv(cmd)...))
	if cmd.Dir != "" {
		wrapped = zerr.With(wrapped, "dir", cmd.Dir)
	}
	if exitCode == -1 {
		wrapped = zerr.With(wrapped, "cause", err.Error())
	}
	return wrapped
}

// lockedWriter serializes writes from the stdout and stderr pumps.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// resolveEnvironment merges the process environment, a PATH prefix and explicit overrides.
// The result is sorted by key.
func resolveEnvironment(sysEnv, pathPrefix []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}

	if len(pathPrefix) > 0 {
		path := strings.Join(pathPrefix, string(os.PathListSeparator))
		if sysPath := envMap["PATH"]; sysPath != "" {
			path += string(os.PathListSeparator) + sysPath
		}
		envMap["PATH"] = path
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of env rather than the process PATH.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		for _, candidate := range candidates(filepath.Join(dir, file), env) {
			if err := findExecutable(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", exec.ErrNotFound
}
