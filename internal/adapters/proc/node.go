package proc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piper/internal/adapters/logger"
	"go.trai.ch/piper/internal/core/ports"
)

const NodeID graft.ID = "adapter.streamer"

func init() {
	graft.Register(graft.Node[ports.Streamer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Streamer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStreamer(log), nil
		},
	})
}
