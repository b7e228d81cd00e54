package ucpatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/logger"
	"go.trai.ch/ucb/internal/adapters/shell"
	"go.trai.ch/ucb/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the patch tool Graft node.
	NodeID graft.ID = "adapter.patch"
	// DownloadsNodeID is the unique identifier for the downloads tool Graft node.
	DownloadsNodeID graft.ID = "adapter.downloads"
)

func init() {
	graft.Register(graft.Node[ports.PatchTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PatchTool, error) {
			return newTool(ctx)
		},
	})

	graft.Register(graft.Node[ports.DownloadsTool]{
		ID:        DownloadsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DownloadsTool, error) {
			return newTool(ctx)
		},
	})
}

func newTool(ctx context.Context) (*Tool, error) {
	exec, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(exec, log), nil
}
