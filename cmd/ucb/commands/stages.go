package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ucb/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Install depot_tools and check out the Chromium source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Init(cmd.Context(), c.invocation())
		},
	}
}

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Update src to the pinned version and sync its dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Sync(cmd.Context(), c.invocation())
		},
	}
}

func (c *CLI) newPrepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Prune binaries, apply patches and substitute domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Prepare(cmd.Context(), c.invocation())
		},
	}
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate build files and compile the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			smoke, _ := cmd.Flags().GetBool("smoke")
			return c.app.Build(cmd.Context(), c.invocation(), app.BuildOptions{Smoke: smoke})
		},
	}
	cmd.Flags().Bool("smoke", false, "Launch the built browser headless afterwards (linux only)")
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Clean(cmd.Context(), c.invocation(), force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Remove a non-default output directory")
	return cmd
}
