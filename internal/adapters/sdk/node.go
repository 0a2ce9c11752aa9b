package sdk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrgen/internal/core/ports"
)

// NodeID is the unique identifier for the SDK locator Graft node.
const NodeID graft.ID = "adapter.sdk_locator"

func init() {
	graft.Register(graft.Node[ports.SdkLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SdkLocator, error) {
			return NewLocator(), nil
		},
	})
}
