// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ucb/internal/adapters/archive"
	_ "go.trai.ch/ucb/internal/adapters/cas"
	_ "go.trai.ch/ucb/internal/adapters/config"
	_ "go.trai.ch/ucb/internal/adapters/fetch"
	_ "go.trai.ch/ucb/internal/adapters/gclient"
	_ "go.trai.ch/ucb/internal/adapters/git"
	_ "go.trai.ch/ucb/internal/adapters/gn"
	_ "go.trai.ch/ucb/internal/adapters/host"
	_ "go.trai.ch/ucb/internal/adapters/linear"
	_ "go.trai.ch/ucb/internal/adapters/logger"
	_ "go.trai.ch/ucb/internal/adapters/shell"
	_ "go.trai.ch/ucb/internal/adapters/smoke"
	_ "go.trai.ch/ucb/internal/adapters/telemetry"
	_ "go.trai.ch/ucb/internal/adapters/ucpatch"
	// Register app and engine nodes.
	_ "go.trai.ch/ucb/internal/app"
	_ "go.trai.ch/ucb/internal/engine/pipeline"
)
