package smoke

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/adapters/logger"
	"go.trai.ch/ucb/internal/core/ports"
)

// NodeID is the unique identifier for the smoke tester Graft node.
const NodeID graft.ID = "adapter.smoke"

func init() {
	graft.Register(graft.Node[ports.SmokeTester]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SmokeTester, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
