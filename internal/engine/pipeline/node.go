package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/gclient"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/gn"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/host"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/smoke"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/adapters/ucpatch"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			gclient.NodeID,
			ucpatch.NodeID,
			ucpatch.DownloadsNodeID,
			gn.NodeID,
			shell.NodeID,
			fetch.NodeID,
			archive.NodeID,
			smoke.NodeID,
			host.DistroNodeID,
			host.DiskNodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			var (
				d   Deps
				err error
			)
			if d.VCS, err = graft.Dep[ports.VCS](ctx); err != nil {
				return nil, err
			}
			if d.GClient, err = graft.Dep[ports.DependencyFetcher](ctx); err != nil {
				return nil, err
			}
			if d.Patch, err = graft.Dep[ports.PatchTool](ctx); err != nil {
				return nil, err
			}
			if d.Downloads, err = graft.Dep[ports.DownloadsTool](ctx); err != nil {
				return nil, err
			}
			if d.Build, err = graft.Dep[ports.BuildSystem](ctx); err != nil {
				return nil, err
			}
			if d.Exec, err = graft.Dep[ports.Executor](ctx); err != nil {
				return nil, err
			}
			if d.Fetcher, err = graft.Dep[ports.Fetcher](ctx); err != nil {
				return nil, err
			}
			if d.Archiver, err = graft.Dep[ports.Archiver](ctx); err != nil {
				return nil, err
			}
			if d.Smoke, err = graft.Dep[ports.SmokeTester](ctx); err != nil {
				return nil, err
			}
			if d.Distro, err = graft.Dep[ports.DistroDetector](ctx); err != nil {
				return nil, err
			}
			if d.Disk, err = graft.Dep[ports.DiskProbe](ctx); err != nil {
				return nil, err
			}
			if d.Stamps, err = graft.Dep[ports.StampStore](ctx); err != nil {
				return nil, err
			}
			if d.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
				return nil, err
			}
			if d.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
				return nil, err
			}
			return New(d), nil
		},
	})
}
