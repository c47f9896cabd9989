package latex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/figc/internal/adapters/logger"
	"go.trai.ch/figc/internal/core/ports"
)

const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(log), nil
		},
	})
}
