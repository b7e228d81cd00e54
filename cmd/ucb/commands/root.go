// Package commands implements the CLI commands for the ucb build orchestrator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ucb/internal/app"
	"go.trai.ch/ucb/internal/build"
	"go.trai.ch/ucb/internal/core/domain"
)

// CLI represents the command line interface for ucb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   globalFlags
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(json, verbose bool)
	Init(ctx context.Context, in domain.Invocation) error
	Sync(ctx context.Context, in domain.Invocation) error
	Prepare(ctx context.Context, in domain.Invocation) error
	Build(ctx context.Context, in domain.Invocation, opts app.BuildOptions) error
	Clean(ctx context.Context, in domain.Invocation, force bool) error
	Status(ctx context.Context, in domain.Invocation) (domain.StatusReport, error)
}

type globalFlags struct {
	os               string
	arch             string
	debug            bool
	outputDir        string
	ccWrapper        string
	gnArgs           string
	shallow          bool
	reset            bool
	directDownload   bool
	installBuildDeps bool
	bestEffort       bool
	jobs             int
	root             string
	json             bool
	verbose          bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ucb",
		Short:         "Build ungoogled-chromium from source",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	c.bindGlobalFlags()

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		c.app.ConfigureLogging(c.flags.json, c.flags.verbose)
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) bindGlobalFlags() {
	f := c.rootCmd.PersistentFlags()
	f.StringVarP(&c.flags.os, "os", "s", string(domain.OSLinux), "Target OS: linux, android or win")
	f.StringVarP(&c.flags.arch, "arch", "a", string(domain.CPUX64), "Target CPU: arm, arm64, x86 or x64")
	f.BoolVar(&c.flags.debug, "debug", false, "Build with debug flags")
	f.StringVarP(&c.flags.outputDir, "output-dir", "o", domain.DefaultOutputDir, "Output base directory, relative to src")
	f.StringVar(&c.flags.ccWrapper, "cc-wrapper", "", "Compiler wrapper, e.g. ccache")
	f.StringVarP(&c.flags.gnArgs, "gn-args", "g", "", "Extra GN flags as key=value pairs separated by ';'")
	f.BoolVar(&c.flags.shallow, "shallow", false, "Fetch sources without history")
	f.BoolVar(&c.flags.reset, "reset", false, "Discard local changes and pin dependencies to the src revision")
	f.BoolVar(&c.flags.directDownload, "direct-download", false, "Use the official source tarball instead of git")
	f.BoolVar(&c.flags.installBuildDeps, "install-build-deps", false, "Run Chromium's build dependency install script")
	f.BoolVar(&c.flags.bestEffort, "best-effort", false, "Skip patches that fail to apply")
	f.IntVarP(&c.flags.jobs, "jobs", "j", 0, "Ninja parallelism (default: number of CPUs)")
	f.StringVarP(&c.flags.root, "root", "C", "", "Workspace root (default: current directory)")
	f.BoolVar(&c.flags.json, "json", false, "Log as JSON")
	f.BoolVar(&c.flags.verbose, "verbose", false, "Log every external command")
}

// invocation collects the global flags into the raw invocation.
func (c *CLI) invocation() domain.Invocation {
	return domain.Invocation{
		Root:             c.flags.root,
		OS:               c.flags.os,
		Arch:             c.flags.arch,
		Debug:            c.flags.debug,
		OutputDir:        c.flags.outputDir,
		CCWrapper:        c.flags.ccWrapper,
		GNArgs:           c.flags.gnArgs,
		Shallow:          c.flags.shallow,
		Reset:            c.flags.reset,
		DirectDownload:   c.flags.directDownload,
		InstallBuildDeps: c.flags.installBuildDeps,
		BestEffort:       c.flags.bestEffort,
		Jobs:             c.flags.jobs,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
