package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cleaner removes build output.
type Cleaner struct {
	logger ports.Logger
	tracer ports.Tracer
}

// NewCleaner creates a Cleaner.
func NewCleaner(logger ports.Logger, tracer ports.Tracer) *Cleaner {
	return &Cleaner{logger: logger, tracer: tracer}
}

// Clean removes the output base directory. A directory other than the default needs force.
func (c *Cleaner) Clean(ctx context.Context, cfg domain.BuildConfig, force bool) error {
	l := cfg.Layout()
	target := l.OutputBase(cfg.OutputDir)

	if filepath.Clean(target) != filepath.Clean(l.OutputBase(domain.DefaultOutputDir)) && !force {
		return zerr.With(zerr.Wrap(domain.ErrOutputDirNotDefault, "clean"), "path", target)
	}

	return inSpan(ctx, c.tracer, StageClean, func(context.Context) error {
		if !exists(target) {
			c.logger.Info("nothing to clean at " + target)
			return nil
		}
		c.logger.Info("removing " + target)
		if err := os.RemoveAll(target); err != nil {
			return zerr.With(zerr.Wrap(err, "clean"), "path", target)
		}
		return nil
	})
}
