package gclient

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/shell"
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the gclient Graft node.
const NodeID graft.ID = "adapter.gclient"

func init() {
	graft.Register(graft.Node[ports.DependencyFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DependencyFetcher, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(exec), nil
		},
	})
}
