// Package pipeline implements the resumable build pipeline: source
// acquisition, dependency sync, patching and the gn/ninja build.
//
// Stages communicate only through the on-disk tree. Each stage runs in its
// own span and stops at its first fatal error.
package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/ucb/internal/core/ports"
)

// Stage names as shown by the renderer.
const (
	StageInit     = "init"
	StageSync     = "sync"
	StagePrepare  = "prepare"
	StageBuild    = "build"
	StageClean    = "clean"
	StageDownload = "download"
	StageSmoke    = "smoke"
)

// inSpan runs fn inside a span named name and records its error.
func inSpan(ctx context.Context, tracer ports.Tracer, name string, fn func(context.Context) error) error {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// removeFile deletes path and ignores a missing file.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
