// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/figc/internal/adapters/config"
	_ "go.trai.ch/figc/internal/adapters/fs"
	_ "go.trai.ch/figc/internal/adapters/latex"
	_ "go.trai.ch/figc/internal/adapters/logger"
	_ "go.trai.ch/figc/internal/adapters/report"
	_ "go.trai.ch/figc/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/figc/internal/app"
	_ "go.trai.ch/figc/internal/engine/dispatcher"
)
