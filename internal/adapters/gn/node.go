package gn

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/shell"
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the build system Graft node.
const NodeID graft.ID = "adapter.gn"

func init() {
	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildSystem, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(exec, NewToolchain(exec)), nil
		},
	})
}
