package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piper/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/piper/internal/adapters/history" //nolint:depguard // Wired in app layer
	"go.trai.ch/piper/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/piper/internal/adapters/proc"    //nolint:depguard // Wired in app layer
	"go.trai.ch/piper/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader *config.FileConfigLoader
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			proc.NodeID,
			history.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	streamer, err := graft.Dep[ports.Streamer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, streamer, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	components := &Components{
		App:    application,
		Logger: log,
	}
	// The CLI reconfigures the loader path from the --config flag.
	if fileLoader, ok := loader.(*config.FileConfigLoader); ok {
		components.ConfigLoader = fileLoader
	}
	return components, nil
}
