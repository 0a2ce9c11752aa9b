// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hdrgen/internal/adapters/codegen"
	_ "go.trai.ch/hdrgen/internal/adapters/config"
	_ "go.trai.ch/hdrgen/internal/adapters/format"
	_ "go.trai.ch/hdrgen/internal/adapters/libclang"
	_ "go.trai.ch/hdrgen/internal/adapters/linear"
	_ "go.trai.ch/hdrgen/internal/adapters/logger"
	_ "go.trai.ch/hdrgen/internal/adapters/sdk"
	_ "go.trai.ch/hdrgen/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/hdrgen/internal/app"
	_ "go.trai.ch/hdrgen/internal/engine/grammar"
)
