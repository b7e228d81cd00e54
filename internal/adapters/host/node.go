package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ucb/internal/core/ports"
)

const (
	// DistroNodeID is the unique identifier for the distro detector Graft node.
	DistroNodeID graft.ID = "adapter.distro"
	// DiskNodeID is the unique identifier for the disk probe Graft node.
	DiskNodeID graft.ID = "adapter.disk"
)

func init() {
	graft.Register(graft.Node[ports.DistroDetector]{
		ID:        DistroNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DistroDetector, error) {
			return NewDistroDetector(), nil
		},
	})

	graft.Register(graft.Node[ports.DiskProbe]{
		ID:        DiskNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DiskProbe, error) {
			return DiskProbe{}, nil
		},
	})
}
