// Package git implements ports.VCS on top of the git command line client.
package git

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

const gitBinary = "git"

var _ ports.VCS = (*Client)(nil)

var headBranchRE = regexp.MustCompile(`HEAD branch:\s*(\S+)`)

// Client runs git through an Executor. Mutating commands stream their output;
// queries capture it.
type Client struct {
	exec ports.Executor
}

// New creates a Client.
func New(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

// Clone clones remote into path. The parent of path must exist.
func (c *Client) Clone(ctx context.Context, remote, path string, opts domain.CloneOptions) error {
	args := []string{gitBinary, "clone"}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.NoTags {
		args = append(args, "--no-tags")
	}
	if opts.Branch != "" {
		args = append(args, "-b", opts.Branch)
	}
	args = append(args, remote, filepath.Base(path))

	cmd := domain.NewCommand(filepath.Dir(path), args...)
	cmd.Name = "git clone " + filepath.Base(path)
	if err := c.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "git clone"), "remote", remote)
	}
	return nil
}

// ProbeWorkTree asks git for the top level of the working tree containing path.
func (c *Client) ProbeWorkTree(ctx context.Context, path string) (domain.WorkTreeProbe, error) {
	out, err := c.query(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return domain.WorkTreeProbe{}, err
	}
	if !out.Success() {
		if notARepository(out.Stderr) {
			return domain.WorkTreeProbe{IsWorkTree: false}, nil
		}
		return domain.WorkTreeProbe{}, queryError("git rev-parse --show-toplevel", path, out)
	}
	return domain.WorkTreeProbe{
		IsWorkTree: true,
		TopLevel:   filepath.Clean(filepath.FromSlash(out.Trimmed())),
	}, nil
}

// IsShallow reports whether the repository at path has truncated history.
func (c *Client) IsShallow(ctx context.Context, path string) (bool, error) {
	out, err := c.mustQuery(ctx, path, "rev-parse", "--is-shallow-repository")
	if err != nil {
		return false, err
	}
	return out == "true", nil
}

// Head returns the commit checked out at path.
func (c *Client) Head(ctx context.Context, path string) (string, error) {
	return c.mustQuery(ctx, path, "rev-parse", "HEAD")
}

// ExactTag returns the tag pointing at rev. A non-zero exit means there is none.
func (c *Client) ExactTag(ctx context.Context, path, rev string) (string, error) {
	out, err := c.query(ctx, path, "describe", "--tags", "--exact-match", rev)
	if err != nil {
		return "", err
	}
	if !out.Success() {
		return "", nil
	}
	return out.Trimmed(), nil
}

// DefaultBranch returns the HEAD branch advertised by remote.
func (c *Client) DefaultBranch(ctx context.Context, path, remote string) (string, error) {
	out, err := c.mustQuery(ctx, path, "remote", "show", remote)
	if err != nil {
		return "", err
	}
	m := headBranchRE.FindStringSubmatch(out)
	if m == nil || m[1] == "(unknown)" {
		return "", zerr.With(zerr.Wrap(domain.ErrCommandFailed, "git remote show: no HEAD branch"), "remote", remote)
	}
	return m[1], nil
}

// Clean removes untracked and ignored files.
func (c *Client) Clean(ctx context.Context, path string) error {
	return c.run(ctx, path, "clean", "-fxd")
}

// ResetHard discards local modifications to tracked files.
func (c *Client) ResetHard(ctx context.Context, path string) error {
	return c.run(ctx, path, "reset", "--hard")
}

// Fetch fetches remote including tags.
func (c *Client) Fetch(ctx context.Context, path, remote string) error {
	return c.run(ctx, path, "fetch", "--tags", remote)
}

// Pull merges branch of remote.
func (c *Client) Pull(ctx context.Context, path, remote, branch string) error {
	return c.run(ctx, path, "pull", remote, branch)
}

// Checkout moves the working tree to revision.
func (c *Client) Checkout(ctx context.Context, path, revision string) error {
	return c.run(ctx, path, "checkout", revision)
}

// SubmoduleUpdate initializes and updates submodules recursively.
func (c *Client) SubmoduleUpdate(ctx context.Context, path string) error {
	return c.run(ctx, path, "submodule", "update", "--init", "--recursive")
}

func (c *Client) run(ctx context.Context, path string, args ...string) error {
	cmd := domain.NewCommand(path, append([]string{gitBinary}, args...)...)
	cmd.Name = "git " + args[0] + " " + filepath.Base(path)
	if err := c.exec.Run(ctx, cmd); err != nil {
		return zerr.Wrap(err, "git "+args[0])
	}
	return nil
}

func (c *Client) query(ctx context.Context, path string, args ...string) (domain.CommandOutput, error) {
	cmd := domain.NewCommand(path, append([]string{gitBinary}, args...)...)
	// Keep git from paging or asking for credentials on a query.
	cmd = cmd.WithEnv("GIT_TERMINAL_PROMPT", "0").WithEnv("GIT_PAGER", "cat")
	out, err := c.exec.Output(ctx, cmd)
	if err != nil {
		return out, zerr.Wrap(err, "git "+args[0])
	}
	return out, nil
}

// mustQuery treats a non-zero exit as an error and returns trimmed stdout.
func (c *Client) mustQuery(ctx context.Context, path string, args ...string) (string, error) {
	out, err := c.query(ctx, path, args...)
	if err != nil {
		return "", err
	}
	if !out.Success() {
		return "", queryError("git "+strings.Join(args, " "), path, out)
	}
	return out.Trimmed(), nil
}

func queryError(label, path string, out domain.CommandOutput) error {
	err := zerr.Wrap(domain.ErrCommandFailed, label)
	err = zerr.With(err, "exit_code", out.ExitCode)
	err = zerr.With(err, "dir", path)
	if stderr := strings.TrimSpace(out.Stderr); stderr != "" {
		err = zerr.With(err, "stderr", stderr)
	}
	return err
}

func notARepository(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "not a git repository")
}
