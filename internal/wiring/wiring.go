// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/smolbuf/internal/adapters/config"
	_ "go.trai.ch/smolbuf/internal/adapters/logger"
	_ "go.trai.ch/smolbuf/internal/adapters/report"
	_ "go.trai.ch/smolbuf/internal/adapters/telemetry"
	_ "go.trai.ch/smolbuf/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/smolbuf/internal/app"
	_ "go.trai.ch/smolbuf/internal/engine/analyzer"
)
