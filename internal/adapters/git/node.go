package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/shell"
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the git Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VCS, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(exec), nil
		},
	})
}
