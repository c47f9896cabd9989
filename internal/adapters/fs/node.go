package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/figc/internal/adapters/logger"
	"go.trai.ch/figc/internal/core/ports"
)

const (
	WalkerNodeID  graft.ID = "adapter.fs.walker"
	MirrorNodeID  graft.ID = "adapter.fs.mirror"
	ScannerNodeID graft.ID = "adapter.fs.scanner"
)

func init() {
	// Walker Node (concrete implementation shared by Mirror and Scanner)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Mirror Node
	graft.Register(graft.Node[ports.Mirrorer]{
		ID:        MirrorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Mirrorer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMirror(walker, log), nil
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})
}
