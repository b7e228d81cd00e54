// Package gclient implements ports.DependencyFetcher with depot_tools' gclient.
package gclient

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyFetcher = (*Client)(nil)

// Client runs gclient from a depot_tools checkout.
type Client struct {
	exec ports.Executor
}

// New creates a Client.
func New(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

// Sync runs gclient sync --nohooks in root with args appended.
func (c *Client) Sync(ctx context.Context, root, depotTools string, args []string) error {
	argv := append([]string{"gclient", "sync", "--nohooks"}, args...)
	if err := c.exec.Run(ctx, command("gclient sync", root, depotTools, argv)); err != nil {
		return zerr.Wrap(err, "gclient sync")
	}
	return nil
}

// RunHooks runs gclient runhooks in root.
func (c *Client) RunHooks(ctx context.Context, root, depotTools string) error {
	argv := []string{"gclient", "runhooks"}
	if err := c.exec.Run(ctx, command("gclient runhooks", root, depotTools, argv)); err != nil {
		return zerr.Wrap(err, "gclient runhooks")
	}
	return nil
}

func command(name, root, depotTools string, argv []string) domain.Command {
	cmd := domain.NewCommand(root, argv...).WithPathPrefix(depotTools)
	cmd.Name = name
	cmd.TTY = true
	return cmd
}
