package domain

import "strings"

// Command is an external process invocation.
// The executable is resolved against PATH after PathPrefix has been prepended,
// so callers never modify the process environment.
type Command struct {
	// Name labels the command in logs and spans.
	Name string
	Args []string
	Dir  string
	// Env overrides or adds environment variables.
	Env map[string]string
	// PathPrefix is prepended to PATH, e.g. depot_tools.
	PathPrefix []string
	// Stdin is written to the process standard input when not empty.
	Stdin string
	// TTY runs the process under a pseudo terminal where supported.
	TTY bool
}

// NewCommand returns a command running argv in dir.
func NewCommand(dir string, argv ...string) Command {
	return Command{Dir: dir, Args: argv}
}

// Executable returns the first argument.
func (c Command) Executable() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Label returns Name or, failing that, the executable.
func (c Command) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Executable()
}

// WithPathPrefix returns a copy with dirs prepended to PATH.
func (c Command) WithPathPrefix(dirs ...string) Command {
	c.PathPrefix = append(append([]string{}, dirs...), c.PathPrefix...)
	return c
}

// WithEnv returns a copy with key set in the environment.
func (c Command) WithEnv(key, value string) Command {
	env := make(map[string]string, len(c.Env)+1)
	for k, v := range c.Env {
		env[k] = v
	}
	env[key] = value
	c.Env = env
	return c
}

// CommandOutput is the captured result of a command run for its output.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports a zero exit code.
func (o CommandOutput) Success() bool { return o.ExitCode == 0 }

// Trimmed returns stdout without surrounding whitespace.
func (o CommandOutput) Trimmed() string { return strings.TrimSpace(o.Stdout) }
