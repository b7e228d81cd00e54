// Package app implements the application layer for ucb.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	pipeline *pipeline.Pipeline
	logger   ports.Logger
	tracer   ports.Tracer
	renderer ports.Renderer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	p *pipeline.Pipeline,
	log ports.Logger,
	tracer ports.Tracer,
	renderer ports.Renderer,
) *App {
	return &App{
		loader:   loader,
		pipeline: p,
		logger:   log,
		tracer:   tracer,
		renderer: renderer,
	}
}

// LogControl is implemented by loggers whose output format can be switched at runtime.
type LogControl interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies the --json and --verbose switches when the logger supports them.
func (a *App) ConfigureLogging(json, verbose bool) {
	if lc, ok := a.logger.(LogControl); ok {
		lc.SetJSON(json)
		lc.SetVerbose(verbose)
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Smoke launches the built browser headless afterwards. Linux only.
	Smoke bool
}

// Init installs depot_tools and checks out the Chromium source.
func (a *App) Init(ctx context.Context, in domain.Invocation) error {
	cfg, _, err := a.resolve(in)
	if err != nil {
		return err
	}
	return a.stage(ctx, pipeline.StageInit, func(ctx context.Context) error {
		steps, err := a.pipeline.Init.Init(ctx, cfg)
		a.logSteps(steps)
		return err
	})
}

// Sync brings src to the configured Chromium version and pulls its dependencies.
func (a *App) Sync(ctx context.Context, in domain.Invocation) error {
	cfg, profile, err := a.resolve(in)
	if err != nil {
		return err
	}
	return a.stage(ctx, pipeline.StageSync, func(ctx context.Context) error {
		var (
			steps []domain.StepResult
			err   error
		)
		switch {
		case profile.SourceFromDownloads:
			steps, err = a.pipeline.Downloads.Sync(ctx, cfg, profile)
		case cfg.DirectDownload:
			steps, err = a.pipeline.Tarball.Sync(ctx, cfg)
		default:
			steps, err = a.syncGit(ctx, cfg, profile)
		}
		a.logSteps(steps)
		return err
	})
}

func (a *App) syncGit(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) ([]domain.StepResult, error) {
	l := cfg.Layout()
	src := cfg.Settings().CheckoutFor(domain.SrcDirName)

	res, err := a.pipeline.Acquirer.Acquire(ctx, domain.AcquireRequest{
		Remote:   src.Remote,
		Path:     l.Src(),
		Revision: src.Revision,
		Shallow:  cfg.Shallow,
		Reset:    cfg.Reset,
		Pin:      !cfg.Shallow,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "sync: acquire src")
	}
	if res.Action.Fresh() || cfg.Reset {
		if err := a.pipeline.Stamps.Delete(l.StampDir(), domain.PrepareStampName); err != nil {
			return nil, err
		}
	}
	a.logger.Info(fmt.Sprintf("src %s at %s", res.Action, res.Revision))

	steps, err := a.pipeline.DepSync.Sync(ctx, cfg, profile, res.Revision)
	if err != nil {
		return steps, zerr.Wrap(err, "sync: dependencies")
	}
	return steps, nil
}

// Prepare patches src and applies domain substitution.
func (a *App) Prepare(ctx context.Context, in domain.Invocation) error {
	cfg, profile, err := a.resolve(in)
	if err != nil {
		return err
	}
	return a.stage(ctx, pipeline.StagePrepare, func(ctx context.Context) error {
		report, err := a.pipeline.Prepare.Prepare(ctx, cfg, profile)
		for _, p := range report.Patches {
			for _, name := range p.Skipped {
				a.logger.Warn("skipped patch " + name)
			}
		}
		a.logSteps(report.Steps)
		return err
	})
}

// Build generates the build files and compiles the platform targets.
func (a *App) Build(ctx context.Context, in domain.Invocation, opts BuildOptions) error {
	cfg, profile, err := a.resolve(in)
	if err != nil {
		return err
	}
	return a.stage(ctx, pipeline.StageBuild, func(ctx context.Context) error {
		report, err := a.pipeline.Build.Build(ctx, cfg, profile)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("built %d target(s) in %s", len(report.Targets), report.OutputPath))

		if !opts.Smoke {
			return nil
		}
		if cfg.OS != domain.OSLinux {
			a.logger.Warn("smoke test is only supported for linux builds, skipping")
			return nil
		}
		smoke, err := a.pipeline.Build.Smoke(ctx, cfg)
		if err != nil {
			return err
		}
		a.logger.Info("smoke test passed: " + smoke.UserAgent)
		return nil
	})
}

// Clean removes the output directory.
func (a *App) Clean(ctx context.Context, in domain.Invocation, force bool) error {
	cfg, _, err := a.resolve(in)
	if err != nil {
		return err
	}
	return a.pipeline.Clean.Clean(ctx, cfg, force)
}

// Status reports the state of the workspace without modifying it.
func (a *App) Status(ctx context.Context, in domain.Invocation) (domain.StatusReport, error) {
	cfg, profile, err := a.resolve(in)
	if err != nil {
		return domain.StatusReport{}, err
	}
	return a.pipeline.Status.Status(ctx, cfg, profile)
}

// resolve validates the invocation and applies the workspace settings.
func (a *App) resolve(in domain.Invocation) (domain.BuildConfig, domain.PlatformProfile, error) {
	cfg, err := domain.ResolveConfig(in)
	if err != nil {
		return cfg, domain.PlatformProfile{}, err
	}

	settings, err := a.loader.Load(cfg.Root)
	if err != nil {
		return cfg, domain.PlatformProfile{}, zerr.Wrap(err, "failed to load settings")
	}
	cfg = cfg.WithSettings(settings)

	profile, err := domain.ProfileFor(cfg.OS)
	if err != nil {
		return cfg, profile, err
	}

	a.logger.Debug(fmt.Sprintf(
		"workspace %s, target %s/%s, mode %s, chromium %s",
		cfg.Root, cfg.OS, cfg.CPU, cfg.Mode(), settings.Versions.Chromium,
	))
	return cfg, profile, nil
}

// stage runs fn as the single top-level span of a command and flushes the renderer afterwards.
func (a *App) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	a.tracer.EmitPlan(ctx, []string{name})
	defer func() {
		_ = a.renderer.Stop()
	}()

	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, name+" failed")
	}
	return nil
}

func (a *App) logSteps(steps []domain.StepResult) {
	for _, s := range steps {
		switch s.Status {
		case domain.StepTolerated:
			a.logger.Warn(fmt.Sprintf("%s: ignored failure: %s", s.Step, s.Detail))
		case domain.StepSkipped:
			a.logger.Info(fmt.Sprintf("%s: skipped: %s", s.Step, s.Detail))
		default:
			a.logger.Debug(s.Step + ": done")
		}
	}
}
