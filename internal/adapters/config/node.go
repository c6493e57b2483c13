package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smolbuf/internal/adapters/logger"
	"go.trai.ch/smolbuf/internal/core/ports"
)

// NodeID is the unique identifier for the corpus loader Graft node.
const NodeID graft.ID = "adapter.corpus_loader"

func init() {
	graft.Register(graft.Node[ports.CorpusLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CorpusLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
