package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/figc/internal/adapters/latex"
	"go.trai.ch/figc/internal/adapters/logger"
	"go.trai.ch/figc/internal/adapters/telemetry/progrock"
	"go.trai.ch/figc/internal/core/ports"
)

const NodeID graft.ID = "engine.dispatcher"

func init() {
	// Dispatcher Node
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{latex.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(renderer, log, tracer), nil
		},
	})
}
