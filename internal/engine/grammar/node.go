package grammar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrgen/internal/core/ports"
)

// NodeID is the unique identifier for the grammar Graft node.
const NodeID graft.ID = "engine.grammar"

func init() {
	graft.Register(graft.Node[ports.StatementParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatementParser, error) {
			return New(), nil
		},
	})
}
