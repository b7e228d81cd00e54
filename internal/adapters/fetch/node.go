package fetch

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/logger"
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.fetch"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, os.Stderr), nil
		},
	})
}
