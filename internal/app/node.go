package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrgen/internal/adapters/codegen"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/format"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/libclang"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/sdk"       //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/hdrgen/internal/engine/grammar"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sdk.NodeID,
			config.NodeID,
			libclang.NodeID,
			grammar.NodeID,
			codegen.NodeID,
			format.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.SdkLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}

	stmts, err := graft.Dep[ports.StatementParser](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	formatter, err := graft.Dep[ports.Formatter](ctx)
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

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	shutdown := telemetry.Setup(renderer)

	return New(locator, loader, parser, stmts, writer, formatter, log, tracer).WithShutdown(shutdown), nil
}
