package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/figc/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_store"

func init() {
	// ReportStore Node
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStore, error) {
			return NewStore(), nil
		},
	})
}
